package types

// Version is the canonical launcher version.
// The desktop shell and the bundled sidecar resource tree ship together,
// so there is a single version for the whole application.
const Version = "0.4.2"
