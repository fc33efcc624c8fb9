package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/spenweb/kd/internal/textutil"
)

var (
	errNotInteractive = errors.New("stdin is not a terminal")
	errInputClosed    = errors.New("input closed")
)

// prompter reads answers line by line from the command's stdin. When stdin
// is a file or pipe rather than a terminal, every prompt fails so scripted
// runs must pass values as flags.
type prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	limit       int
	assumeYes   bool
}

func newPrompter(cmd *cobra.Command, ctx *commandContext) *prompter {
	in := cmd.InOrStdin()
	return &prompter{
		in:          bufio.NewReader(in),
		out:         cmd.OutOrStdout(),
		interactive: isInteractive(in),
		limit:       ctx.suggestionLimit(),
		assumeYes:   ctx.skipConfirm(),
	}
}

// isInteractive treats non-file readers as scripted input so tests can drive prompts.
func isInteractive(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return true
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// textPrompt describes one free-text question.
type textPrompt struct {
	label    string
	flag     string
	initial  string
	choices  []string
	mustPick bool
}

// readLine returns one trimmed line. A final line without a newline is
// returned as is; EOF with nothing typed is errInputClosed.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return textutil.NormalizeName(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return textutil.NormalizeName(line), nil
}

func (p *prompter) missing(label, flag string) error {
	label = strings.TrimSuffix(label, ":")
	if flag == "" {
		return fmt.Errorf("%s: %w", label, errNotInteractive)
	}
	return fmt.Errorf("%s: %w; pass --%s", label, errNotInteractive, flag)
}

// text asks for a string. Known choices are offered as suggestions; with
// mustPick an answer that only partially matches is rejected and asked again
// so lookups land on an existing name.
func (p *prompter) text(q textPrompt) (string, error) {
	if !p.interactive {
		return "", p.missing(q.label, q.flag)
	}
	for {
		if suggestions := textutil.Suggest(q.choices, "", p.limit); len(suggestions) > 0 {
			fmt.Fprintf(p.out, "  (known: %s)\n", strings.Join(suggestions, ", "))
		}
		if q.initial != "" {
			fmt.Fprintf(p.out, "%s [%s] ", q.label, q.initial)
		} else {
			fmt.Fprintf(p.out, "%s ", q.label)
		}
		answer, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("%s: %w", q.label, err)
		}
		if answer == "" {
			if q.initial != "" {
				return q.initial, nil
			}
			fmt.Fprintln(p.out, "A value is required")
			continue
		}
		if len(q.choices) == 0 || !q.mustPick {
			return answer, nil
		}

		if picked, ok := matchChoice(q.choices, answer); ok {
			return picked, nil
		}
		suggestions := textutil.Suggest(q.choices, answer, p.limit)
		if len(suggestions) == 1 {
			return suggestions[0], nil
		}
		if len(suggestions) == 0 {
			return answer, nil
		}
		fmt.Fprintf(p.out, "%q matches several names: %s\n", answer, strings.Join(suggestions, ", "))
	}
}

// matchChoice finds answer among choices, exact first and then case-folded.
func matchChoice(choices []string, answer string) (string, bool) {
	for _, choice := range choices {
		if choice == answer {
			return choice, true
		}
	}
	for _, choice := range choices {
		if textutil.EqualFold(choice, answer) {
			return choice, true
		}
	}
	return "", false
}

// year asks for an integer year, repeating until the answer parses.
func (p *prompter) year(label, flag string, initial int) (int, error) {
	if !p.interactive {
		return 0, p.missing(label, flag)
	}
	for {
		if initial != 0 {
			fmt.Fprintf(p.out, "%s [%d] ", label, initial)
		} else {
			fmt.Fprintf(p.out, "%s ", label)
		}
		answer, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", label, err)
		}
		if answer == "" && initial != 0 {
			return initial, nil
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid year")
			continue
		}
		return value, nil
	}
}

// choose offers a numbered list. The answer may be the number, the option
// text, or any other text, which is taken verbatim.
func (p *prompter) choose(label, flag string, options []string, current string) (string, error) {
	if !p.interactive {
		return "", p.missing(label, flag)
	}
	def := current
	if def == "" && len(options) > 0 {
		def = options[0]
	}
	for i, option := range options {
		marker := " "
		if option == def {
			marker = ">"
		}
		fmt.Fprintf(p.out, "%s %d) %s\n", marker, i+1, option)
	}
	fmt.Fprintf(p.out, "%s [%s] ", label, def)
	answer, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("%s: %w", label, err)
	}
	if answer == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	if picked, ok := matchChoice(options, answer); ok {
		return picked, nil
	}
	return answer, nil
}

// confirm asks "Does this info look correct: <rendering>" with yes as the default.
func (p *prompter) confirm(rendering string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	label := "Does this info look correct: " + rendering
	if !p.interactive {
		return false, fmt.Errorf("confirm %q: %w; pass --yes to save without confirming", rendering, errNotInteractive)
	}
	for {
		fmt.Fprintf(p.out, "%s [Y/n] ", label)
		answer, err := p.readLine()
		if err != nil {
			return false, fmt.Errorf("confirmation: %w", err)
		}
		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer yes or no")
	}
}
