package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/algoviz/pkg/config"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/keys"
	"github.com/matzehuels/algoviz/pkg/share"
)

// shareCommand creates the share command group.
func (c *CLI) shareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Create and open shareable visualization inputs",
		Long: `Create and open shareable visualization inputs.

A share token encodes the structure, mode, keys and operation script in a
URL-safe string. Saved shares are stored in the configured backend and
referenced by ID instead.`,
	}

	cmd.AddCommand(c.shareEncodeCommand())
	cmd.AddCommand(c.shareDecodeCommand())
	cmd.AddCommand(c.shareSaveCommand())
	cmd.AddCommand(c.shareLoadCommand())

	return cmd
}

// stateFlags describes a share state on the command line.
type stateFlags struct {
	mode string
	ops  string
}

func (f *stateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "heap ordering: max or min")
	cmd.Flags().StringVar(&f.ops, "ops", "", "heap operation script")
}

func (f *stateFlags) state(args []string) (share.State, error) {
	st := share.State{
		Structure: args[0],
		Mode:      f.mode,
		Values:    keys.ParseAll(args[1:]),
		Ops:       f.ops,
	}
	return st, st.Validate()
}

func (c *CLI) shareEncodeCommand() *cobra.Command {
	var sf stateFlags
	cmd := &cobra.Command{
		Use:     "encode <heap|bst> [values...]",
		Short:   "Print a share token",
		Args:    cobra.MinimumNArgs(1),
		Example: `  algoviz share encode heap 5 3 8 --mode min`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sf.state(args)
			if err != nil {
				return err
			}
			token, err := share.Encode(st)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func (c *CLI) shareDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Print the state inside a share token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := share.Decode(args[0])
			if err != nil {
				return err
			}
			printState(st)
			return nil
		},
	}
}

func (c *CLI) shareSaveCommand() *cobra.Command {
	var sf stateFlags
	cmd := &cobra.Command{
		Use:   "save <heap|bst> [values...]",
		Short: "Store a state and print its ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sf.state(args)
			if err != nil {
				return err
			}
			store, err := c.openShareStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore(store.Close)

			id, err := store.Save(cmd.Context(), st)
			if err != nil {
				return fmt.Errorf("save share: %w", err)
			}
			printSuccess("Saved share %s", StyleHighlight.Render(id))
			printNextStep("Open it with", "algoviz share load "+id)
			return nil
		},
	}
	sf.register(cmd)
	return cmd
}

func (c *CLI) shareLoadCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "load <id>",
		Short: "Print a saved state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateShareID(args[0]); err != nil {
				return err
			}
			store, err := c.openShareStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore(store.Close)

			st, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			printState(st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the state as JSON")
	return cmd
}

// openShareStore opens the configured backend. The in-memory backend does
// not outlive the process, so the CLI stores to files instead.
func (c *CLI) openShareStore(cmd *cobra.Command) (share.Store, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Share.Backend == config.BackendMemory {
		cfg.Share.Backend = config.BackendFile
	}
	store, err := newShareStore(cmd.Context(), cfg.Share)
	if err != nil {
		return nil, fmt.Errorf("open share store: %w", err)
	}
	return store, nil
}

func printState(st share.State) {
	printKeyValue("Structure", st.Structure)
	if st.Mode != "" {
		printKeyValue("Mode", st.Mode)
	}
	printKeyValue("Values", joinKeys(st.Values))
	if st.Ops != "" {
		printKeyValue("Ops", st.Ops)
	}
}
