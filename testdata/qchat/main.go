// Command qchat is a stand-in for the real agent binary, used by the
// integration tests. It checks that it was invoked exactly the way the
// adapter promises and echoes the task description back on stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	args := os.Args[1:]
	if len(args) != 4 {
		fmt.Fprintf(os.Stderr, "qchat stub: got %d args, want 4: %q\n", len(args), args)
		os.Exit(2)
	}

	want := []string{"chat", "--no-interactive", "--trust-all-tools"}
	for i, w := range want {
		if args[i] != w {
			fmt.Fprintf(os.Stderr, "qchat stub: arg %d = %q, want %q\n", i, args[i], w)
			os.Exit(2)
		}
	}

	fmt.Print(args[3])
}
