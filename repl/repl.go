// Package repl implements an interactive session for trying out the dialect:
// features are toggled with enable and disable, and expressions or
// statements are parsed and echoed back in base syntax.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/jpp/feature"
	"github.com/dhamidi/jpp/format"
	"github.com/dhamidi/jpp/java/ast"
	"github.com/dhamidi/jpp/java/parser"
	"github.com/dhamidi/jpp/java/token"
)

var log = commonlog.GetLogger("jpp.repl")

const (
	prompt             = "> "
	continuationPrompt = "... "
)

// Session reads commands from in and writes results to out. The feature set
// it parses with is owned by the session and changed by enable and disable.
type Session struct {
	features *feature.Set
	in       *bufio.Reader
	out      io.Writer
	commands map[string]command
	quit     bool
}

type command struct {
	usage string
	help  string
	run   func(s *Session, args string)
}

// NewSession returns a session over in and out. A nil feature set starts
// from the registry defaults.
func NewSession(in io.Reader, out io.Writer, features *feature.Set) *Session {
	if features == nil {
		features = feature.Default.Defaults()
	}
	s := &Session{
		features: features,
		in:       bufio.NewReader(in),
		out:      out,
	}
	s.commands = map[string]command{
		"enable":   {"enable [<features>]", "enable features, or list the enabled ones", (*Session).enable},
		"disable":  {"disable [<features>]", "disable features, or list the disabled ones", (*Session).disable},
		"features": {"features", "list every feature", (*Session).listFeatures},
		"expr":     {"expr <expression>", "parse an expression and print it in base syntax", (*Session).expr},
		"stmt":     {"stmt <statements>", "parse statements and print them in base syntax", (*Session).stmt},
		"tokens":   {"tokens <text>", "print the tokens of text", (*Session).tokens},
		"dump":     {"dump <statements>", "print the syntax tree of statements", (*Session).dump},
		"help":     {"help", "print this help", (*Session).help},
		"quit":     {"quit", "leave the session", (*Session).exit},
	}
	return s
}

// Features returns the session's feature set.
func (s *Session) Features() *feature.Set {
	return s.features
}

// Run reads and executes commands until quit or the end of input.
func (s *Session) Run() error {
	for !s.quit {
		line, err := s.readLine(prompt)
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		s.Execute(line)
	}
	return nil
}

// Execute runs a single command line. Parse commands may read further lines
// while their input is incomplete.
func (s *Session) Execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := s.commands[name]
	if !ok {
		s.unknown(name)
		return
	}
	log.Debugf("command %s %q", name, args)
	cmd.run(s, strings.TrimSpace(args))
}

func (s *Session) readLine(p string) (string, error) {
	fmt.Fprint(s.out, p)
	line, err := s.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) unknown(name string) {
	names := make([]string, 0, len(s.commands))
	for n := range s.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	msg := fmt.Sprintf("Unknown command '%s'", name)
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", matches[0].Str)
	}
	s.println(msg)
}

func (s *Session) enable(args string) {
	if args == "" {
		enabled := s.features.Enabled()
		if len(enabled) == 0 {
			s.println("All features are currently disabled")
			return
		}
		s.println("Enabled features:")
		for _, f := range enabled {
			s.println(f.ID())
		}
		return
	}
	s.report(s.features.Enable(strings.Fields(args)...))
}

func (s *Session) disable(args string) {
	if args == "" {
		disabled := s.features.Disabled()
		if len(disabled) == 0 {
			s.println("All features are currently enabled")
			return
		}
		s.println("Disabled features:")
		for _, f := range disabled {
			s.println(f.ID())
		}
		return
	}
	s.report(s.features.Disable(strings.Fields(args)...))
}

func (s *Session) report(changes []feature.Change, err error) {
	for _, c := range changes {
		s.println(c.String())
	}
	if err != nil {
		s.println("Error:", err)
	}
}

func (s *Session) listFeatures(args string) {
	if args != "" {
		s.println("Too many arguments to command 'features'")
		return
	}
	s.println("Features:")
	for _, id := range s.features.Registry().IDs() {
		s.println(id)
	}
}

func (s *Session) expr(args string) {
	node, err := s.parse(args, parser.ParseExpression)
	if err != nil {
		s.println(err)
		return
	}
	s.println(format.Code(node))
}

func (s *Session) stmt(args string) {
	node, err := s.parse(args, parser.ParseStatements)
	if err != nil {
		s.println(err)
		return
	}
	fmt.Fprint(s.out, format.Statements(node.(*ast.Block)))
}

func (s *Session) dump(args string) {
	node, err := s.parse(args, parser.ParseStatements)
	if err != nil {
		s.println(err)
		return
	}
	fmt.Fprint(s.out, ast.Dump(node))
}

func (s *Session) tokens(args string) {
	for tok, err := range parser.Tokenize([]byte(args), s.features).All() {
		if err != nil {
			s.println(err)
			return
		}
		if tok.Kind == token.EOF {
			return
		}
		s.println(fmt.Sprintf("%s %s %s", tok.Span.Start, tok.Kind, tok))
	}
}

// parse parses text, reading continuation lines for as long as the parser
// reports that more input could complete it.
func (s *Session) parse(text string, entry func(io.Reader, ...parser.Option) *parser.Parser) (ast.Node, error) {
	p := entry(strings.NewReader(text), parser.WithFeatures(s.features))
	for !p.IsComplete() {
		line, err := s.readLine(continuationPrompt)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		text += "\n" + line
		p.Reset(strings.NewReader(text))
	}
	p.Reset(strings.NewReader(text))
	return p.Finish()
}

func (s *Session) help(args string) {
	names := make([]string, 0, len(s.commands))
	for n := range s.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		c := s.commands[n]
		s.println(fmt.Sprintf("%-22s %s", c.usage, c.help))
	}
}

func (s *Session) exit(args string) {
	s.quit = true
}
