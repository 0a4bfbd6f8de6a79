package main

// <constants>
const cliErrMsg = `hexsum: error: %s`
const resultJSONErrMsg = `could not serialize result JSON: %s`

// </constants>

// <global-variables>
//   <subset purpose="used for passing values between ‘cobra’ methods">
var w Output
var log Output
var exitCode int

//   </subset>
// </global-variables>
