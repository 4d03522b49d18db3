package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nevermoreT/io-capture/internal/config"
	"github.com/nevermoreT/io-capture/internal/logging"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the capture debug log",
	Long: `View the JSON debug log a capture session writes when logging
is enabled (--log-dir or logging.dir in the config file).

Examples:
  # Show the last 50 entries
  iocap logs --log-dir /tmp/iocap

  # Show everything
  iocap logs --log-dir /tmp/iocap -n 0

  # Follow new entries as sessions run
  iocap logs --log-dir /tmp/iocap -f`,
	RunE: runLogs,
}

var (
	logsTail   int
	logsFollow bool
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
}

// logEntry represents a parsed JSON log line.
type logEntry struct {
	Time   time.Time `json:"time"`
	Level  string    `json:"level"`
	Msg    string    `json:"msg"`
	Stream string    `json:"stream,omitempty"`
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Logging.Dir == "" {
		return fmt.Errorf("no log directory configured; pass --log-dir or set logging.dir")
	}

	logPath := filepath.Join(cfg.Logging.Dir, logging.LogFileName)
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	offset, err := printTail(file, logsTail)
	if err != nil {
		return err
	}

	if !logsFollow {
		return nil
	}
	return followLog(cfg.Logging.Dir, file, offset)
}

// printTail prints the last n entries (all entries when n <= 0) and
// returns the file offset after the last printed line.
func printTail(file *os.File, n int) (int64, error) {
	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read log file: %w", err)
	}

	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for _, line := range lines {
		printEntry(line)
	}

	return file.Seek(0, io.SeekEnd)
}

// followLog watches the log directory and prints entries appended
// after offset. It blocks until the watcher fails or the process is
// interrupted.
func followLog(dir string, file *os.File, offset int64) error {
	// Watch the directory rather than the file: the log may be
	// recreated between sessions.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != logging.LogFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			offset, err = printFrom(file, offset)
			if err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("log watcher failed: %w", err)
		}
	}
}

// printFrom prints complete lines appended since offset and returns
// the new offset.
func printFrom(file *os.File, offset int64) (int64, error) {
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, err
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		printEntry(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return offset, err
	}
	return file.Seek(0, io.SeekCurrent)
}

// printEntry renders one JSON log line; malformed lines are printed
// raw.
func printEntry(line string) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		fmt.Println(line)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", entry.Time.Format("15:04:05"), entry.Level, entry.Msg)
	if entry.Stream != "" {
		fmt.Fprintf(&b, " stream=%s", entry.Stream)
	}
	fmt.Println(b.String())
}
