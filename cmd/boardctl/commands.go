package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"outing-board-backend/internal/api/handlers"
	"outing-board-backend/internal/models"
	"outing-board-backend/internal/service"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "BOARDCTL"

// cli carries what every subcommand needs
type cli struct {
	v       *viper.Viper
	in      *bufio.Reader
	out     io.Writer
	confirm service.Confirmer
}

func (c *cli) client() *boardClient {
	return newBoardClient(c.v.GetString("server"), c.v.GetString("token"), c.v.GetDuration("timeout"))
}

// newRootCmd builds the command tree reading prompts from in and writing to out
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{
		v:   viper.New(),
		in:  bufio.NewReader(in),
		out: out,
	}
	c.confirm = service.ConfirmFunc(c.promptYesNo)

	root := &cobra.Command{
		Use:          "boardctl",
		Short:        "Terminal client for the outing board",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().String("server", "http://localhost:7008", "board server base URL")
	root.PersistentFlags().String("token", "", "editor token (or BOARDCTL_TOKEN)")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP timeout")
	_ = c.v.BindPFlags(root.PersistentFlags())
	c.v.SetEnvPrefix(envPrefix)
	c.v.AutomaticEnv()

	root.AddCommand(
		c.loginCmd(),
		c.unlockCmd(),
		c.lockCmd(),
		c.listCmd(),
		c.addCmd(),
		c.editCmd(),
		c.deleteCmd(),
		c.logCmd(),
		c.suggestCmd(),
		c.announceCmd(),
		c.saveCmd(),
	)
	return root
}

// promptYesNo asks a y/N question; anything but y/yes declines
func (c *cli) promptYesNo(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si" || answer == "sí", nil
}

func (c *cli) loginCmd() *cobra.Command {
	var req service.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Unlock the board for viewers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var state models.SessionState
			if err := c.client().do(cmd.Context(), http.MethodPost, "/session/login", req, &state); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Board unlocked")
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "user", "u", "", "board username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "board password")
	return cmd
}

func (c *cli) unlockCmd() *cobra.Command {
	var req service.LoginRequest
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the editor and print a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var token service.EditorTokenResponse
			if err := c.client().do(cmd.Context(), http.MethodPost, "/session/editor", req, &token); err != nil {
				return err
			}
			fmt.Fprintln(c.out, token.Token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "user", "u", "", "editor username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "editor password")
	return cmd
}

func (c *cli) lockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Revoke every editor token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.client().do(cmd.Context(), http.MethodDelete, "/session/editor", nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Editor locked")
			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List outings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var outings []models.OutingRecord
			if err := c.client().do(cmd.Context(), http.MethodGet, "/outings", nil, &outings); err != nil {
				return err
			}
			w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDAY\tTIME\tGROUP\tMEETING PLACE\tCONDUCTOR")
			for _, o := range outings {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.Day, o.Time, o.Group, o.MeetingPlace, o.Conductor)
			}
			return w.Flush()
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a new outing card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var outing models.OutingRecord
			if err := c.client().do(cmd.Context(), http.MethodPost, "/outings", nil, &outing); err != nil {
				return err
			}
			fmt.Fprintln(c.out, outing.ID)
			return nil
		},
	}
}

func (c *cli) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <field> <value>",
		Short: "Edit one field of an outing and log the change",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, field, value := args[0], models.OutingField(args[1]), args[2]
			if !field.Valid() {
				return fmt.Errorf("unknown field %q", args[1])
			}

			client := c.client()
			var outing models.OutingRecord
			if err := client.do(cmd.Context(), http.MethodGet, "/outings/"+id, nil, &outing); err != nil {
				return err
			}
			previous, _ := outing.Get(field)

			update := handlers.UpdateOutingRequest{Field: field, Value: value}
			if err := client.do(cmd.Context(), http.MethodPatch, "/outings/"+id, update, nil); err != nil {
				return err
			}

			commit := handlers.CommitOutingRequest{Field: field, Value: value, Previous: previous}
			var result handlers.CommitOutingResponse
			if err := client.do(cmd.Context(), http.MethodPost, "/outings/"+id+"/commit", commit, &result); err != nil {
				return err
			}
			if result.Logged {
				fmt.Fprintln(c.out, "Change logged")
			} else {
				fmt.Fprintln(c.out, "No change")
			}
			return nil
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an outing after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confirmed := yes
			if !confirmed {
				var err error
				confirmed, err = c.confirm.Confirm(cmd.Context(), service.DeletePrompt)
				if err != nil {
					return err
				}
			}
			if !confirmed {
				fmt.Fprintln(c.out, "Cancelled")
				return nil
			}

			var result handlers.DeleteOutingResponse
			path := fmt.Sprintf("/outings/%s?confirm=true", args[0])
			if err := c.client().do(cmd.Context(), http.MethodDelete, path, nil, &result); err != nil {
				return err
			}
			if result.Deleted {
				fmt.Fprintln(c.out, "Deleted")
			} else {
				fmt.Fprintln(c.out, "Nothing deleted")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (c *cli) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the change log, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var entries []models.ChangeLogEntry
			if err := c.client().do(cmd.Context(), http.MethodGet, "/changelog", nil, &entries); err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(c.out, "%s  %-12s %s\n", e.Timestamp, e.Action, e.Description)
			}
			return nil
		},
	}
}

func (c *cli) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "suggest [category]",
		Short:     "Fetch suggestions for a category",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: models.CategoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := string(models.CategoryScripture)
			if len(args) == 1 {
				category = args[0]
			}
			var items []models.SuggestionItem
			if err := c.client().do(cmd.Context(), http.MethodGet, "/suggestions?category="+category, nil, &items); err != nil {
				return err
			}
			for _, item := range items {
				if item.Reference != "" {
					fmt.Fprintf(c.out, "- %s (%s)\n", item.Text, item.Reference)
				} else {
					fmt.Fprintf(c.out, "- %s\n", item.Text)
				}
			}
			return nil
		},
	}
}

func (c *cli) announceCmd() *cobra.Command {
	var duration int
	var hide bool
	cmd := &cobra.Command{
		Use:   "announce [message]",
		Short: "Publish or hide the quick announcement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := c.client()
			if hide {
				if err := client.do(cmd.Context(), http.MethodDelete, "/announcement", nil, nil); err != nil {
					return err
				}
				fmt.Fprintln(c.out, "Announcement hidden")
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("message is required")
			}

			req := service.PublishAnnouncementRequest{Message: args[0], Duration: duration}
			var state models.AnnouncementState
			if err := client.do(cmd.Context(), http.MethodPost, "/announcement", req, &state); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Announcement active for %ds\n", state.Duration)
			return nil
		},
	}
	cmd.Flags().IntVarP(&duration, "duration", "d", models.DefaultAnnouncementDuration, "seconds to show the announcement")
	cmd.Flags().BoolVar(&hide, "hide", false, "hide the active announcement")
	return cmd
}

func (c *cli) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save and lock the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.client().do(cmd.Context(), http.MethodPost, "/save", nil, nil); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Saved")
			return nil
		},
	}
}
