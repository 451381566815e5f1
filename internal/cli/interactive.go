package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/Kavirubc/gh-tracker/internal/workflow"
	"github.com/Kavirubc/gh-tracker/pkg/models"
	"github.com/chzyer/readline"
)

const titlePrompt = "Title: "

// runInteractiveCreate reads the form from the terminal. Duplicate checks run
// on every keystroke in the title field and the prompt shows the latest count.
func runInteractiveCreate(ctx context.Context, a *app, out io.Writer) error {
	var (
		rl           *readline.Instance
		editingTitle atomic.Bool
	)
	editingTitle.Store(true)

	watcher := workflow.NewTitleWatcher(a.svc, func(c workflow.TitleCheck) {
		if c.Err != nil {
			return
		}
		if n := len(c.Similar); n > 0 {
			rl.SetPrompt(yellow(fmt.Sprintf("Title (%d similar): ", n)))
		} else {
			rl.SetPrompt(cyan(titlePrompt))
		}
		rl.Refresh()
	}, a.logger)
	defer watcher.Close()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cyan(titlePrompt),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Listener: readline.FuncListener(func(line []rune, pos int, key rune) ([]rune, int, bool) {
			if editingTitle.Load() {
				watcher.OnEdit(ctx, string(line))
			}
			return nil, 0, false
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	title, err := rl.Readline()
	if err != nil {
		return err
	}
	editingTitle.Store(false)
	watcher.Wait()

	req := workflow.CreateRequest{Title: title}
	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Description: ", &req.Description},
		{fmt.Sprintf("Priority [%s]: ", models.PriorityMedium), &req.Priority},
		{"Assign to: ", &req.AssignedTo},
	}
	for _, f := range fields {
		rl.SetPrompt(cyan(f.prompt))
		line, err := rl.Readline()
		if err != nil {
			return err
		}
		*f.dest = strings.TrimSpace(line)
	}

	res, err := a.svc.Create(ctx, req)
	if err != nil {
		return err
	}

	if res.NeedsConfirmation {
		printMatches(out, res.Similar)
		rl.SetPrompt("Create anyway? [y/N]: ")
		answer, err := rl.Readline()
		if err != nil || !isYes(answer) {
			fmt.Fprintln(out, "Cancelled, nothing was created")
			return nil
		}
		req.Force = true
		if res, err = a.svc.Create(ctx, req); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s Created issue %s\n", green("✓"), cyan(models.ShortID(res.Issue.ID)))
	printIssueDetail(out, res.Issue)
	return nil
}
