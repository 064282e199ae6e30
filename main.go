// Command helmsman renders Kubernetes-style Service manifests from
// layered values files.
package main

import "github.com/cameronsjo/helmsman/internal/cmd"

func main() {
	cmd.Execute()
}
