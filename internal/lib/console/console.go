package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"concertPlanner/internal/models"
)

// HandlerFunc is one menu action run against the interactive session.
type HandlerFunc func(ctx context.Context, c *Console) error

// Console reads answers line by line and writes prompts and reports.
// Every prompt returns io.EOF once input is exhausted.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Line prints prompt and returns the answer with surrounding space trimmed.
func (c *Console) Line(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Int re-prompts until the answer is a whole number inside r.
func (c *Console) Int(prompt string, r IntRange) (int, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := ParseInt(line, r)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrTooSmall):
			c.Printf("Value must be >= %d.\n", *r.Min)
		case errors.Is(err, ErrTooLarge):
			c.Printf("Value must be <= %d.\n", *r.Max)
		default:
			c.Println("Invalid input! Please enter a whole integer.")
		}
	}
}

// Float re-prompts until the answer is a real number >= floor.
func (c *Console) Float(prompt string, floor float64) (float64, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, ok := c.parseFloat(line, floor)
		if ok {
			return v, nil
		}
	}
}

// FloatDefault is Float where a blank answer selects def.
func (c *Console) FloatDefault(prompt string, floor, def float64) (float64, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}

		v, ok := c.parseFloat(line, floor)
		if ok {
			return v, nil
		}
	}
}

func (c *Console) parseFloat(line string, floor float64) (float64, bool) {
	v, err := ParseFloat(line, floor)
	switch {
	case err == nil:
		return v, true
	case errors.Is(err, ErrTooSmall):
		c.Printf("Value must be >= %s.\n", formatFloat(floor))
	default:
		c.Println("Invalid input! Please enter a real number.")
	}

	return 0, false
}

// Date re-prompts until the answer is a YYYY-MM-DD date.
func (c *Console) Date(prompt string) (time.Time, error) {
	for {
		line, err := c.Line(prompt)
		if err != nil {
			return time.Time{}, err
		}

		d, err := models.ParseDate(line)
		if err == nil {
			return d, nil
		}

		c.Println("Invalid date format. Please use YYYY-MM-DD.")
	}
}
