package main

// Version is the version of the updateversion CLI itself.
var Version = "2.1.0"
