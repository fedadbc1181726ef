package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fieldtask/fieldtask/internal/tasklist"
	"github.com/fieldtask/fieldtask/pkg/fieldtask"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List all tasks for the logged-in account, newest first.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c, token, err := getAuthedClient()
		if err != nil {
			handleError(err)
		}

		tasks, err := c.ListTasks(context.Background(), token)
		if err != nil {
			handleError(err)
		}

		printTaskList(os.Stdout, tasks, jsonOutput)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Long: `Create a new task with the given title.

Use --image to attach an image URL and --lat/--lng to attach a location.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, _ := cmd.Flags().GetString("image")

		opts := []fieldtask.CreateTaskOption{}
		if image != "" {
			opts = append(opts, fieldtask.WithImage(image))
		}

		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			lat, lng, err := locationFlags(cmd)
			if err != nil {
				handleError(err)
			}
			opts = append(opts, fieldtask.WithLocation(lat, lng))
		}

		c, token, err := getAuthedClient()
		if err != nil {
			handleError(err)
		}

		task, err := c.CreateTask(context.Background(), token, strings.Join(args, " "), opts...)
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setCompleted(args[0], true)
	},
}

var undoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task as not done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setCompleted(args[0], false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Toggle a task between done and not done",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, token, err := getAuthedClient()
		if err != nil {
			handleError(err)
		}

		view := tasklist.NewView(c, token)
		if err := view.Refresh(context.Background()); err != nil {
			handleError(err)
		}
		if err := view.ToggleCompleted(context.Background(), args[0]); err != nil {
			handleError(err)
		}

		printTaskList(os.Stdout, view.Tasks(), jsonOutput)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Update fields of an existing task. Only the flags you pass are changed.

Use --clear-image to remove the task's image.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := []fieldtask.UpdateTaskOption{}

		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			opts = append(opts, fieldtask.WithTitle(title))
		}
		clearImage, _ := cmd.Flags().GetBool("clear-image")
		if clearImage {
			opts = append(opts, fieldtask.WithImageCleared())
		} else if cmd.Flags().Changed("image") {
			image, _ := cmd.Flags().GetString("image")
			opts = append(opts, fieldtask.WithUpdateImage(image))
		}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			lat, lng, err := locationFlags(cmd)
			if err != nil {
				handleError(err)
			}
			opts = append(opts, fieldtask.WithUpdateLocation(lat, lng))
		}

		if len(opts) == 0 {
			handleError(errors.New("nothing to update (pass --title, --image, --clear-image or --lat/--lng)"))
		}

		c, token, err := getAuthedClient()
		if err != nil {
			handleError(err)
		}

		task, err := c.UpdateTask(context.Background(), token, args[0], opts...)
		if err != nil {
			handleError(err)
		}

		printTask(os.Stdout, task, jsonOutput)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, token, err := getAuthedClient()
		if err != nil {
			handleError(err)
		}

		if err := c.DeleteTask(context.Background(), token, args[0]); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Deleted task %s", args[0]), jsonOutput)
	},
}

// getAuthedClient resolves the client and the stored session token together
func getAuthedClient() (*fieldtask.Client, string, error) {
	c, err := getClient()
	if err != nil {
		return nil, "", err
	}
	token, err := getToken()
	if err != nil {
		return nil, "", err
	}
	return c, token, nil
}

// locationFlags reads --lat and --lng, requiring both
func locationFlags(cmd *cobra.Command) (float64, float64, error) {
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
		return 0, 0, errors.New("--lat and --lng must be given together")
	}
	lat, _ := cmd.Flags().GetFloat64("lat")
	lng, _ := cmd.Flags().GetFloat64("lng")
	return lat, lng, nil
}

func setCompleted(id string, completed bool) {
	c, token, err := getAuthedClient()
	if err != nil {
		handleError(err)
	}

	task, err := c.SetCompleted(context.Background(), token, id, completed)
	if err != nil {
		handleError(err)
	}

	printTask(os.Stdout, task, jsonOutput)
}

func init() {
	addCmd.Flags().String("image", "", "Image URL to attach")
	addCmd.Flags().Float64("lat", 0, "Location latitude")
	addCmd.Flags().Float64("lng", 0, "Location longitude")

	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().String("image", "", "New image URL")
	editCmd.Flags().Bool("clear-image", false, "Remove the image")
	editCmd.Flags().Float64("lat", 0, "Location latitude")
	editCmd.Flags().Float64("lng", 0, "Location longitude")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
}
