package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/plugin/lua"
)

func (a *app) newLuaCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "lua <script>",
		Short: "Run a Lua script with the keychord module loaded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := lua.NewState(lua.WithExecutionTimeout(timeout))
			if err != nil {
				return err
			}
			defer state.Close()

			lua.NewModule(a.cfg.Resolver()).WithLogger(a.logger).Register(state)

			a.logger.Debug("running script", "path", args[0])
			if err := state.DoFile(args[0]); err != nil {
				return fmt.Errorf("lua: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", lua.DefaultExecutionTimeout, "maximum script run time")
	return cmd
}
