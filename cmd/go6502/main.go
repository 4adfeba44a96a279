// Command go6502 runs the interactive 6502 host: load a raw binary,
// set breakpoints, step or run it, and inspect memory and registers.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/beevik/term"

	"github.com/nmos6502/go6502/host"
)

func init() {
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: go6502 [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()

	// Run commands contained in command-line script files first.
	args := flag.Args()
	for _, filename := range args {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		runInteractive(h, fd)
		return
	}

	// Not attached to a terminal (e.g. piped input): fall back to
	// line-buffered reads and let the OS deliver Ctrl-C as a signal.
	go handleInterrupt(h)
	h.RunCommands(os.Stdin, os.Stdout, true)
}

// runInteractive puts the controlling terminal into raw input mode so
// that a Ctrl-C keystroke can be read as a byte and routed to
// h.Break() directly -- raw mode disables the terminal driver's own
// signal generation, so os/signal would never see it otherwise.
func runInteractive(h *host.Host, fd int) {
	oldState, err := term.MakeRawInput(fd)
	if err != nil {
		go handleInterrupt(h)
		h.RunCommands(os.Stdin, os.Stdout, true)
		return
	}
	defer term.Restore(fd, oldState)

	r, w := io.Pipe()
	go feedLines(os.Stdin, w, h)
	h.RunCommands(r, os.Stdout, true)
}

// feedLines echoes raw keystrokes from in and assembles them into
// newline-terminated commands written to w, since raw mode leaves
// line editing and echo to us. A Ctrl-C keystroke breaks whatever the
// host is doing instead of being buffered into the next command.
func feedLines(in *os.File, w *io.PipeWriter, h *host.Host) {
	defer w.Close()
	reader := bufio.NewReader(in)
	var line []byte
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch b {
		case 0x03: // Ctrl-C
			h.Break()
			line = line[:0]
		case '\r', '\n':
			os.Stdout.Write([]byte("\r\n"))
			line = append(line, '\n')
			if _, err := w.Write(line); err != nil {
				return
			}
			line = line[:0]
		case 0x7f, 0x08: // backspace / delete
			if len(line) > 0 {
				line = line[:len(line)-1]
				os.Stdout.Write([]byte("\b \b"))
			}
		default:
			line = append(line, b)
			os.Stdout.Write([]byte{b})
		}
	}
}

func handleInterrupt(h *host.Host) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	for range c {
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
