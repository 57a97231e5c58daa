// Command barstatus-msg is the bar's CLI companion (§6): a small
// message-sender that speaks the IPC line protocol (§4.5) over the same
// socket the running barstatus process listens on.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/ipc"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// newRootCmd builds the cobra command tree. With no args cobra prints
// its own usage listing, satisfying §6's "prints a usage listing"
// requirement without duplicating it by hand.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "barstatus-msg",
		Short:         "Send a command to a running barstatus process",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		sendCmd("redraw", "Force a full bar redraw next tick", 0, func(a []string) string { return "redraw" }),
		sendCmd("reload", "Reload configuration immediately", 0, func(a []string) string { return "reload" }),
		sendCmd("status", "Print a one-line JSON visibility summary", 0, func(a []string) string { return "status" }),
		sendCmd("toggle", "Toggle the entire bar's visibility", 0, func(a []string) string { return "toggle" }),
		newSetCmd(),
		newGetCmd(),
		sendCmd("list", "List every known module id as JSON", 0, func(a []string) string { return "list" }),
		newTriggerCmd(),
	)
	return root
}

// sendCmd builds a leaf command that sends one fixed-arity line and
// prints the server's reply.
func sendCmd(use, short string, minArgs int, line func(args []string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(minArgs),
		RunE: func(_ *cobra.Command, args []string) error {
			return sendAndPrint(line(args))
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <key>=<value>",
		Short: "Mutate an external module's property",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			line := args[0]
			for _, a := range args[1:] {
				line += " " + a
			}
			return sendAndPrint("set " + line)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id> [property]",
		Short: "Read an external module's property",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			line := "get " + args[0]
			if len(args) == 2 {
				line += " " + args[1]
			}
			return sendAndPrint(line)
		},
	}
}

func newTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger <id> update|popup",
		Short: "Force an update or toggle a module's popup",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return sendAndPrint("trigger " + args[0] + " " + args[1])
		},
	}
}

func sendAndPrint(line string) error {
	client := ipc.NewClient(config.SocketPath())
	reply, err := client.Send(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "barstatus-msg: %v\n", err)
		return err
	}
	fmt.Println(reply)
	return nil
}
