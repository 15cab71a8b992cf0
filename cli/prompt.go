// Package cli holds the interactive console front-end.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"restaurant-hours/config"
)

const (
	fileQuestion = "Please enter the csv file name(or press enter to use rest_hours.csv): "
	timeQuestion = "Please enter datetime(YYYY-MM-DD hh:mm:ss) or press ENTER to use now() to check the open restaurants.: "

	missingFileMessage = "This file doesn't exist in this directory."
	wrongFormatMessage = "Wrong format!!!"
)

// ErrInputClosed is returned when the input ends before both answers are read.
var ErrInputClosed = errors.New("input closed")

// Prompt asks for a CSV file name and a query time on a line-oriented console.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time

	// DefaultFile is used when the file answer is empty.
	DefaultFile string
	// FileExists reports whether a file name is acceptable.
	FileExists func(name string) bool
}

func NewPrompt(in io.Reader, out io.Writer, now func() time.Time) *Prompt {
	return &Prompt{
		in:          bufio.NewScanner(in),
		out:         out,
		now:         now,
		DefaultFile: config.GetResourcePath(config.REST_HOURS_RESOURCE),
		FileExists:  isFile,
	}
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

// AskFile re-prompts until an existing file is named. An empty answer
// selects DefaultFile without checking it.
func (p *Prompt) AskFile() (string, error) {
	for {
		answer, err := p.ask(fileQuestion)
		if err != nil {
			return "", err
		}
		if answer == "" {
			return p.DefaultFile, nil
		}
		if p.FileExists(answer) {
			return answer, nil
		}
		fmt.Fprintln(p.out, missingFileMessage)
	}
}

// AskTime re-prompts until a valid datetime is given. An empty answer is now.
func (p *Prompt) AskTime() (time.Time, error) {
	for {
		answer, err := p.ask(timeQuestion)
		if err != nil {
			return time.Time{}, err
		}
		now := p.now()
		if answer == "" {
			return now, nil
		}
		when, err := time.ParseInLocation(config.QUERY_TIME_LAYOUT, answer, now.Location())
		if err == nil {
			return when, nil
		}
		fmt.Fprintln(p.out, wrongFormatMessage)
	}
}

// Run asks both questions in order.
func (p *Prompt) Run() (string, time.Time, error) {
	file, err := p.AskFile()
	if err != nil {
		return "", time.Time{}, err
	}
	when, err := p.AskTime()
	if err != nil {
		return "", time.Time{}, err
	}
	return file, when, nil
}

func (p *Prompt) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}
