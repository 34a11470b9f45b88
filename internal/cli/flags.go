package cli

// Options holds the command-line flags. Both are required.
type Options struct {
	Input  string `short:"i" long:"input" description:"FamilyTreeBuilder CSV to transform" required:"true"`
	Output string `short:"o" long:"output" description:"Destination file for output" required:"true"`
}
