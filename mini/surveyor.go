package mini

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/vizor-cli/vizor/icon"
	"github.com/vizor-cli/vizor/style"
	"github.com/vizor-cli/vizor/util"
)

// title prints a section banner above the next prompt.
func title(text string) {
	fmt.Println(style.Title(style.Truncate(truncateAt)(text)))
}

// fail prints a non-fatal failure notice.
func fail(text string) {
	fmt.Println(icon.Get(icon.Fail) + " " + text)
}

// progress prints an erasable status line.
func progress(text string) (eraser func()) {
	return util.PrintErasable(icon.Get(icon.Progress) + " " + text)
}

// menu shows a single-choice prompt and returns the selected option index.
// A survey interrupt (ctrl+c) surfaces as an error.
func menu(message string, options []string) (int, error) {
	var choice int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 10,
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return 0, err
	}
	return choice, nil
}
