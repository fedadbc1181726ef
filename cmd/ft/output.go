package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fieldtask/fieldtask/pkg/fieldtask"
)

// printTask prints a single task to the writer
func printTask(w io.Writer, task *fieldtask.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(task)
		return
	}

	// Table format
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", task.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", task.Title)
	fmt.Fprintf(tw, "Done:\t%s\n", doneString(task.Completed))
	if task.Image != nil && *task.Image != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", *task.Image)
	}
	if task.Location != nil {
		fmt.Fprintf(tw, "Location:\t%.6f, %.6f\n", task.Location.Latitude, task.Location.Longitude)
	}
	tw.Flush()
}

// printTaskList prints a list of tasks
func printTaskList(w io.Writer, tasks []fieldtask.Task, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(tasks)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}

	// Table format
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tDONE\tTITLE\n")
	fmt.Fprintf(tw, "--\t----\t-----\n")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", task.ID, doneString(task.Completed), truncate(task.Title, 50))
	}
	tw.Flush()
}

// printError prints an error message
func printError(w io.Writer, err error, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// printSuccess prints a success message
func printSuccess(w io.Writer, message string, jsonOutput bool) {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(map[string]interface{}{
			"message": message,
		})
		return
	}

	fmt.Fprintln(w, message)
}

// doneString renders a completed flag as a checkbox
func doneString(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
