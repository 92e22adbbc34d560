package exec

// ExecutableNameFor exposes the platform-specific name for tests.
var ExecutableNameFor = executableName
