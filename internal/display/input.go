package display

import (
	"fmt"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
)

// ReadRequest prompts the operator for a free-text request when none was
// given on the command line. Returns the entered text, which may be empty
// if the operator bailed out with Ctrl+C or Ctrl+D.
func ReadRequest() string {
	var (
		request string
		done    bool
	)

	completer := func(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
		end := d.CurrentRuneIndex()
		return []prompt.Suggest{}, end, end
	}

	p := prompt.New(
		func(input string) {
			request = strings.TrimSpace(input)
			done = true
		},
		prompt.WithCompleter(completer),
		prompt.WithPrefix("plz> "),
		prompt.WithTitle("plz"),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return done
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Println()
				request = ""
				done = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					request = ""
					done = true
				}
				return false
			},
		}),
	)

	p.Run()
	return request
}
