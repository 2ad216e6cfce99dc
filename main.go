package main

import (
	"embed"

	"github.com/Workflow-Manager-admin/note-management-system-6606-6670/cmd"
)

//go:embed frontend
var efs embed.FS

//go:embed config/config.yaml
var c string

func main() {
	cmd.Execute(efs, c)
}
