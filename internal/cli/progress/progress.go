package progress

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Status represents the state of a tracked step.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

// Item is a single step being tracked.
type Item struct {
	Name     string
	Status   Status
	Duration time.Duration
	Error    error
}

// Tracker renders progress for a sequence of steps. Steps run strictly one
// after another; only the spinner repaint happens on a separate goroutine,
// and only when stdout is a terminal.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
	items        []Item
	current      int
	total        int
	startTime    time.Time
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	spinnerFrame int
	actionVerb   string
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

// NewTracker creates a tracker with a neutral action verb.
func NewTracker(names []string) *Tracker {
	return NewTrackerWithVerb(names, "Processing")
}

// NewTrackerWithVerb creates a tracker whose status lines read
// "<verb> <step>", e.g. "Creating cluster".
func NewTrackerWithVerb(names []string, verb string) *Tracker {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Status: StatusPending}
	}

	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities()

	return &Tracker{
		items:      items,
		current:    -1,
		total:      len(names),
		isTTY:      isTTY,
		useColor:   !noColor && isTTY && caps.supportsANSI,
		caps:       caps,
		stopChan:   make(chan struct{}),
		actionVerb: verb,
	}
}

// Start begins the spinner animation when stdout is a terminal. Without a
// terminal the tracker prints timestamped lines instead.
func (t *Tracker) Start() {
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// StartItem marks a step as running.
func (t *Tracker) StartItem(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.items[index].Status = StatusRunning
	t.startTime = time.Now()

	if !t.isTTY {
		ts := time.Now().Format("15:04:05")
		fmt.Printf("[%s] [%d/%d] %s %s...\n", ts, index+1, t.total, t.actionVerb, t.items[index].Name)
	}
}

// CompleteItem records the outcome of a step.
func (t *Tracker) CompleteItem(index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[index].Duration = time.Since(t.startTime)
	if err != nil {
		t.items[index].Status = StatusFailed
		t.items[index].Error = err
	} else {
		t.items[index].Status = StatusSuccess
	}

	if !t.isTTY {
		ts := time.Now().Format("15:04:05")
		sym, status := "+", "completed"
		if err != nil {
			sym, status = "x", "FAILED"
		}
		fmt.Printf("[%s] %s %s %s (%s)\n", ts, sym, t.items[index].Name, status, formatDuration(t.items[index].Duration))
		// Error details are printed by the root error handler, not here
	}
}

// PrintItemComplete prints the final line for a step in terminal mode.
// Non-terminal mode already printed it from CompleteItem.
func (t *Tracker) PrintItemComplete(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.isTTY {
		return
	}

	item := t.items[index]
	fmt.Print(clearLine(t.caps))

	var sym, suffix string
	switch item.Status {
	case StatusSuccess:
		sym = "+"
		if t.useColor {
			sym = "\033[32m+\033[0m"
		}
		suffix = fmt.Sprintf("(%s)", formatDuration(item.Duration))
	case StatusFailed:
		sym = "x"
		if t.useColor {
			sym = "\033[31mx\033[0m"
		}
		suffix = fmt.Sprintf("(%s) FAILED", formatDuration(item.Duration))
	}

	counter := fmt.Sprintf("[%d/%d]", index+1, t.total)
	if t.useColor {
		counter = "\033[2m" + counter + "\033[0m"
		suffix = "\033[2m" + suffix + "\033[0m"
	}
	fmt.Printf("  %s %s  %s  %s\n", sym, counter, item.Name, suffix)
}

// Stop ends the tracking and restores the terminal line.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		if t.useColor {
			fmt.Print("\033[0m")
		}
		fmt.Print(clearLine(t.caps))
		t.mu.Unlock()
	}
}

// animate repaints the in-place status line for the running step until
// stopped.
func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			t.paint()
			t.mu.Unlock()
		}
	}
}

// paint redraws the status line. Caller holds the lock.
func (t *Tracker) paint() {
	if t.current < 0 || t.items[t.current].Status != StatusRunning {
		return
	}

	t.spinnerFrame++
	item := t.items[t.current]
	spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
	counter := fmt.Sprintf("[%d/%d]", t.current+1, t.total)
	elapsed := formatDuration(time.Since(t.startTime))

	var line string
	if t.useColor {
		line = fmt.Sprintf("  \033[1m%s %s  %s\033[0m  \033[2m%s\033[0m", spinner, counter, item.Name, elapsed)
	} else {
		line = fmt.Sprintf("  %s %s  %s  %s", spinner, counter, item.Name, elapsed)
	}
	fmt.Print(clearLine(t.caps) + truncateToWidth(line, t.caps.terminalWidth))
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
