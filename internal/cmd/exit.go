package cmd

// Exit codes returned by the stackgen binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid project file or configuration.
	ExitValidationError = 2

	// ExitNotFound indicates a project file, template region or directory was not found.
	ExitNotFound = 5

	// ExitTemplateError indicates a template tree was incomplete or failed to render.
	ExitTemplateError = 6

	// ExitFilesystemError indicates the output directory could not be written.
	ExitFilesystemError = 7
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitTemplateError:
		return "Template Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	default:
		return "Unknown"
	}
}
