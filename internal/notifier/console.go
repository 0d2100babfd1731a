package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/util"
	"github.com/fatih/color"
)

// Console prints a human-readable report. It always prints, even when nothing is wrong.
type Console struct {
	out       io.Writer
	heading   *color.Color
	attention *color.Color
}

func NewConsole(out io.Writer, colored bool) *Console {
	heading := color.New(color.FgYellow, color.Bold)
	attention := color.New(color.FgRed, color.Bold)
	if colored {
		heading.EnableColor()
		attention.EnableColor()
	} else {
		heading.DisableColor()
		attention.DisableColor()
	}
	return &Console{
		out:       out,
		heading:   heading,
		attention: attention,
	}
}

func (c *Console) Notify(_ context.Context, report domain.Report) error {
	if report.Hostname != "" {
		if _, err := fmt.Fprintf(c.out, "Server: %s.\n", report.Hostname); err != nil {
			return domain.NewDeliveryError("console", err)
		}
	}
	if err := c.printRunning(report.Running); err != nil {
		return domain.NewDeliveryError("console", err)
	}
	if err := c.printStopped(report.Stopped); err != nil {
		return domain.NewDeliveryError("console", err)
	}
	return nil
}

func (c *Console) printRunning(running []domain.RunningContainerStatus) error {
	if len(running) == 0 {
		_, err := fmt.Fprintln(c.out, "No running containers.")
		return err
	}
	runs := util.ChunkBy(running, func(r domain.RunningContainerStatus) domain.HealthStatus { return r.Health })
	for _, run := range runs {
		var err error
		switch {
		case run.Key == domain.HealthUnhealthy:
			_, err = c.attention.Fprintln(c.out, "Running, unhealthy containers:")
		case run.Key.IsKnown():
			_, err = c.heading.Fprintf(c.out, "Running containers (%s):\n", run.Key)
		default:
			_, err = c.heading.Fprintln(c.out, "Running containers without health status:")
		}
		if err != nil {
			return err
		}
		for _, r := range run.Items {
			if _, err := fmt.Fprintln(c.out, r.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Console) printStopped(stopped []domain.StoppedContainerStatus) error {
	if len(stopped) == 0 {
		_, err := fmt.Fprintln(c.out, "No container that was supposed to be running is stopped.")
		return err
	}
	if _, err := c.attention.Fprintln(c.out, "The following containers are stopped:"); err != nil {
		return err
	}
	for _, s := range stopped {
		line := s.Name
		if s.Status != "" {
			line = fmt.Sprintf("%s (%s)", s.Name, s.Status)
		}
		if _, err := fmt.Fprintln(c.out, line); err != nil {
			return err
		}
	}
	return nil
}
