package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ragged/nest"
	"github.com/npillmayer/ragged/proppath"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'ragged.cli'
func tracer() tracing.Trace {
	return tracing.Select("ragged.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.ragged.cli":    "Info",
		"trace.ragged":        "Error",
		"trace.ragged.path":   "Error",
		"trace.ragged.script": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	policy := flag.String("policy", "repeat", "Padding policy [repeat|strict|truncate]")
	maxdepth := flag.Int("maxdepth", 0, "Maximum nesting depth (0 = default, <0 = unlimited)")
	props := flag.String("props", "", "YAML file with a property tree for get/set")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the ragged data CLI")
	//
	// set up REPL
	repl, err := readline.New("rg > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := newIntp()
	intp.repl = repl
	if intp.opt.Padding, err = nest.ParsePadding(*policy); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.opt.MaxDepth = *maxdepth
	if err := intp.loadProps(*props); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	vars    map[string]nest.Value
	opt     nest.Options
	scene   map[string]any // property tree for get/set
	aliases proppath.Aliases
	p       *message.Printer
}

func newIntp() *Intp {
	return &Intp{
		vars:  make(map[string]nest.Value),
		scene: map[string]any{},
		aliases: proppath.Aliases{
			"s":    "scene",
			"objs": "scene.objects",
		},
		p: message.NewPrinter(language.English),
	}
}

func (intp *Intp) String() string {
	if intp == nil {
		return "()"
	}
	return fmt.Sprintf("( policy=%s depth=%d vars=%d )", intp.opt.Padding, intp.opt.MaxDepth, len(intp.vars))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single parsed command.
type Op struct {
	code  int
	topic string // text after ':' in the command word
	arg   string // rest of line
}

const (
	QUIT int = iota
	HELP
	LET
	VARS
	EVAL
	DEPTH
	ZIP
	FUNCS
	POLICY
	MAXDEPTH
	GET
	SET
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"let":      LET,
	"vars":     VARS,
	"eval":     EVAL,
	"depth":    DEPTH,
	"zip":      ZIP,
	"funcs":    FUNCS,
	"policy":   POLICY,
	"maxdepth": MAXDEPTH,
	"get":      GET,
	"set":      SET,
}

func opNames() []string {
	names := make([]string, 0, len(opMap))
	for name := range opMap {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	word, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	name, topic, _ := strings.Cut(word, ":") // e.g. "help:eval"
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try 'help'", name)
	}
	op := &Op{code: code, topic: topic, arg: strings.TrimSpace(rest)}
	tracer().Debugf("parsed command: %s %q", name, op.arg)
	return op, nil
}

var commandFn map[int]func(*Intp, *Op) (error, bool)

func init() {
	commandFn = map[int]func(*Intp, *Op) (error, bool){
		QUIT:     quitOp,
		HELP:     helpOp,
		LET:      letOp,
		VARS:     varsOp,
		EVAL:     evalOp,
		DEPTH:    depthOp,
		ZIP:      zipOp,
		FUNCS:    funcsOp,
		POLICY:   policyOp,
		MAXDEPTH: maxdepthOp,
		GET:      getOp,
		SET:      setOp,
	}
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Property tree ----------------------------------------------------

func (intp *Intp) loadProps(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree := map[string]any{}
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("property tree %s: %w", path, err)
	}
	intp.scene = tree
	tracer().Infof("loaded property tree with %d entries", len(tree))
	return nil
}

func (intp *Intp) resolver() *proppath.MapResolver {
	return &proppath.MapResolver{Globals: map[string]any{"scene": intp.scene}}
}

func (intp *Intp) propPath(s string) (proppath.Path, error) {
	expanded, err := intp.aliases.Expand(s, "scene")
	if err != nil {
		return nil, err
	}
	return proppath.Parse(expanded)
}
