package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotman/pkg/commands"
	"github.com/arthur-debert/dotman/pkg/style"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [remote-url]",
		Short: MsgInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}

			remoteURL := ""
			if len(args) == 1 {
				remoteURL = args[0]
			}

			if err := commands.Init(env, remoteURL); err != nil {
				return err
			}
			cmd.Printf(MsgInitialized, env.ConfigDir)
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>",
		Short: MsgAddShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}

			rec, err := commands.Add(env, args[0])
			if err != nil {
				return err
			}
			cmd.Printf(MsgTrackedFormat, style.Path(rec.Original))
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <path>",
		Short: MsgRemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}

			rec, err := commands.Remove(env, args[0])
			if err != nil {
				return err
			}
			cmd.Printf(MsgRemovedFormat, style.Path(rec.Original))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}

			statuses, err := commands.List(env)
			if err != nil {
				return err
			}

			if len(statuses) == 0 {
				cmd.Println(MsgNoFilesTracked)
				return nil
			}

			for _, s := range statuses {
				cmd.Printf("%s %s -> %s\n",
					style.StatusTag(s.State),
					style.Path(s.Record.Original),
					s.Record.Repo)
			}
			return nil
		},
	}
}

func newPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: MsgPushShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}
			return commands.Push(env)
		},
	}
}

func newPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: MsgPullShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}
			return commands.Pull(env)
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: MsgSyncShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := commands.NewEnv()
			if err != nil {
				return err
			}
			return commands.Sync(env)
		},
	}
}
