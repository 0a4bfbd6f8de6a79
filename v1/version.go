package v1

// Release metadata of this hexsum implementation.
const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0
const RELEASE_DATE = "2026-08-25"
const LICENSE = "GPL-3.0-or-later"
