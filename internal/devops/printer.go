// Package devops prints Azure DevOps logging commands. They are only
// interpreted when the suite runs inside an Azure Pipelines job.
package devops

import (
	"fmt"
	"io"
	"os"
)

// Output is where logging commands are written.
var Output io.Writer = os.Stdout

func LogError(msg string, a ...any) {
	fmt.Fprintf(Output, "##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

func LogWarning(msg string, a ...any) {
	fmt.Fprintf(Output, "##vso[task.logissue type=warning]%s\n", fmt.Sprintf(msg, a...))
}

// UploadLog attaches the file at path to the pipeline run.
func UploadLog(path string) {
	fmt.Fprintf(Output, "##vso[task.uploadfile]%s\n", path)
}
