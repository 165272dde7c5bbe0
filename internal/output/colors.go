package output

// statusColors maps hg change codes to ANSI color indexes used when
// rendering status listings.
var statusColors = map[string]string{
	"A": "2",  // added: green
	"M": "4",  // modified: blue
	"R": "1",  // removed: red
	"!": "1",  // missing: red
	"?": "5",  // untracked: magenta
	"C": "8",  // clean: gray
}

// statusOrder fixes the rendering order of the change codes.
var statusOrder = []string{"M", "A", "R", "!", "?", "C"}
