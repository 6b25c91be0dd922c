package types

// Version is the application version, overwritten by the build pipeline
var Version = "dev"

// AppName is used for the CLI name and derived identifiers
const AppName = "bambuspect"
