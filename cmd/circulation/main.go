// Command circulation runs the library circulation service: schema migrations,
// overdue reminders, read-model reports, fixture seeding and an in-memory demo.
package main

import (
	"context"
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := runCLI(context.Background(), &app{}, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// runCLI executes the root command and always flushes telemetry and logs afterward,
// also when the command failed.
func runCLI(ctx context.Context, a *app, args []string) error {
	defer a.close()

	root := newRootCommand(a)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}
