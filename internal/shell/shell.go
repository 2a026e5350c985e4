// Package shell provides the interactive numbered-menu front end.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/tunedeck/internal/app/command"
)

// Executor runs commands and renders their errors.
type Executor interface {
	Execute(ctx context.Context, cmd command.Command) (command.Result, error)
	Message(err error) string
}

// prompt asks for a single command argument.
type prompt struct {
	arg   string
	label string
}

// menuItem maps a menu number to a command.
type menuItem struct {
	number  int
	label   string
	name    command.Name
	header  string
	prompts []prompt
}

var menu = []menuItem{
	{number: 1, label: "Add User", name: command.AddUser, prompts: []prompt{{"username", "Enter username: "}}},
	{number: 2, label: "Select User", name: command.SelectUser, prompts: []prompt{{"username", "Enter username: "}}},
	{number: 3, label: "Add Song", name: command.AddSong, header: "Enter song details:", prompts: []prompt{
		{"id", "ID: "}, {"title", "Title: "}, {"artist", "Artist: "}, {"genre", "Genre: "},
	}},
	{number: 4, label: "Play Song", name: command.Play, prompts: []prompt{{"song_id", "Enter song ID: "}}},
	{number: 5, label: "Play Random Song", name: command.PlayRandom},
	{number: 6, label: "Display Listening History", name: command.History},
	{number: 7, label: "Play Previous Song", name: command.SkipPrevious},
	{number: 8, label: "Play Next Song", name: command.SkipNext},
	{number: 9, label: "Adjust Volume", name: command.Volume, prompts: []prompt{{"level", "Enter Volume to set: "}}},
	{number: 10, label: "Display Playlist", name: command.Playlist},
	{number: 11, label: "Exit", name: command.Exit},
	{number: 12, label: "Pause", name: command.Pause},
	{number: 13, label: "Resume", name: command.Resume},
	{number: 14, label: "Now Playing", name: command.Status},
}

const (
	menuWidth = 35

	// maxLineBytes caps one input line. Longer lines are discarded.
	maxLineBytes = 64 * 1024
)

var errLineTooLong = errors.New("input line too long")

// Shell reads menu choices and prints command results.
type Shell struct {
	executor Executor
	in       *bufio.Reader
	out      io.Writer
	showMenu bool
}

// New creates a shell reading from in and writing to out.
func New(executor Executor, in io.Reader, out io.Writer, showMenu bool) *Shell {
	return &Shell{
		executor: executor,
		in:       bufio.NewReader(in),
		out:      out,
		showMenu: showMenu,
	}
}

// Run loops until Exit is chosen, the input ends or ctx is cancelled.
// Command failures and unusable input are printed and never stop the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.showMenu {
			if err := s.printMenu(); err != nil {
				return err
			}
		}

		line, ok, err := s.ask("Enter your choice: ")
		if errors.Is(err, errLineTooLong) {
			if err := s.invalidInput(err); err != nil {
				return err
			}
			continue
		}
		if err != nil || !ok {
			return err
		}

		item, found := lookup(line)
		if !found {
			if err := s.invalidInput(errors.Newf("unknown menu choice %q", line)); err != nil {
				return err
			}
			continue
		}

		cmd, ok, err := s.collect(item)
		if errors.Is(err, errLineTooLong) {
			if err := s.invalidInput(err); err != nil {
				return err
			}
			continue
		}
		if err != nil || !ok {
			return err
		}

		res, execErr := s.executor.Execute(ctx, cmd)
		if execErr != nil {
			zlog.Debug().Err(execErr).Msgf("command failed: command=%s", cmd.Name)
			if err := s.println(s.executor.Message(execErr)); err != nil {
				return err
			}
			continue
		}

		for _, l := range res.Lines {
			if err := s.println(l); err != nil {
				return err
			}
		}
		if res.Exit {
			return nil
		}
	}
}

// collect prompts for the arguments of a menu item.
// Returns false when the input ends; an oversized answer abandons the command.
func (s *Shell) collect(item menuItem) (command.Command, bool, error) {
	if item.header != "" {
		if err := s.println(item.header); err != nil {
			return command.Command{}, false, err
		}
	}

	args := make(map[string]any, len(item.prompts))
	for _, p := range item.prompts {
		value, ok, err := s.ask(p.label)
		if err != nil || !ok {
			return command.Command{}, false, err
		}
		args[p.arg] = value
	}
	return command.New(item.name, args), true, nil
}

// ask prints a prompt and reads one trimmed line.
// Returns false when the input ends and errLineTooLong for an oversized line.
func (s *Shell) ask(label string) (string, bool, error) {
	if _, err := io.WriteString(s.out, label); err != nil {
		return "", false, errors.Wrap(err, "failed to write prompt")
	}
	return s.readLine()
}

// readLine reads up to the next newline. An oversized line is consumed
// entirely so the next read starts on a fresh line.
func (s *Shell) readLine() (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", false, nil
			}
			return "", false, errors.Wrap(err, "failed to read input")
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", true, errLineTooLong
	}
	return strings.TrimSpace(string(buf)), true, nil
}

// invalidInput reports unusable input and lets the loop continue.
func (s *Shell) invalidInput(cause error) error {
	zlog.Debug().Err(cause).Msg("invalid input")
	return s.println(s.executor.Message(command.ErrInvalidInput))
}

func (s *Shell) println(line string) error {
	if _, err := fmt.Fprintln(s.out, line); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func (s *Shell) printMenu() error {
	border := "+" + strings.Repeat("-", menuWidth) + "+"
	rows := []string{border, row("       Music Player Menu"), border}
	for _, item := range menu {
		rows = append(rows, row(fmt.Sprintf(" %d. %s", item.number, item.label)))
	}
	rows = append(rows, border)

	for _, r := range rows {
		if err := s.println(r); err != nil {
			return err
		}
	}
	return nil
}

func row(text string) string {
	return fmt.Sprintf("|%-*s|", menuWidth, text)
}

// lookup finds the menu item for a choice.
func lookup(choice string) (menuItem, bool) {
	n, err := strconv.Atoi(choice)
	if err != nil {
		return menuItem{}, false
	}
	for _, item := range menu {
		if item.number == n {
			return item, true
		}
	}
	return menuItem{}, false
}
