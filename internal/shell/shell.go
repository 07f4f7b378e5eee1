// Package shell is a line-oriented front end for the generator form
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-petgen/internal/entities/pet"
	"github.com/KirkDiggler/rpg-petgen/internal/errors"
	"github.com/KirkDiggler/rpg-petgen/internal/form"
	"github.com/KirkDiggler/rpg-petgen/internal/orchestrators/generator"
	"github.com/KirkDiggler/rpg-petgen/internal/ui"
)

// DefaultPrompt is printed before each line
const DefaultPrompt = "petgen> "

type handler func(ctx context.Context, args []string) error

type command struct {
	name    string
	usage   string
	summary string
	run     handler
}

// Config holds the dependencies for a Shell
type Config struct {
	Form    *form.Form
	Service generator.Service
	In      io.Reader
	Out     io.Writer
	Prompt  string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Form == nil {
		vb.RequiredField("Form")
	}
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}

	return vb.Build()
}

// Shell reads commands and applies them to a form
type Shell struct {
	form     *form.Form
	service  generator.Service
	in       io.Reader
	out      io.Writer
	prompt   string
	commands map[string]command
	order    []string
	verbs    *registry
	fields   *registry
	lastSeq  int
	quit     bool
}

// New creates a shell over cfg.Form
func New(cfg *Config) (*Shell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	s := &Shell{
		form:     cfg.Form,
		service:  cfg.Service,
		in:       cfg.In,
		out:      cfg.Out,
		prompt:   prompt,
		commands: make(map[string]command),
		verbs:    newRegistry(),
		fields:   newRegistry(),
	}
	s.registerCommands()
	s.registerFields()

	return s, nil
}

func (s *Shell) add(c command, aliases ...string) {
	s.commands[c.name] = c
	s.order = append(s.order, c.name)
	s.verbs.register(c.name, aliases...)
}

func (s *Shell) registerCommands() {
	s.add(command{name: "set", usage: "set <field> <value>", summary: "set a form field", run: s.cmdSet})
	s.add(command{name: "element", usage: "element <earth|water|fire|wind> <0-10>", summary: "edit one element", run: s.cmdElement}, "el")
	s.add(command{name: "preset", usage: "preset <name>", summary: "apply an element preset", run: s.cmdPreset})
	s.add(command{name: "presets", usage: "presets", summary: "list element presets", run: s.cmdPresets})
	s.add(command{name: "clear", usage: "clear", summary: "set every element to 0", run: s.cmdClear}, "전체0")
	s.add(command{name: "generate", usage: "generate", summary: "generate stats and the enemybase line", run: s.cmdGenerate}, "gen")
	s.add(command{name: "show", usage: "show", summary: "show the form", run: s.cmdShow})
	s.add(command{name: "concepts", usage: "concepts", summary: "list concepts", run: s.cmdConcepts})
	s.add(command{name: "help", usage: "help", summary: "list commands", run: s.cmdHelp}, "?")
	s.add(command{name: "quit", usage: "quit", summary: "leave the shell", run: s.cmdQuit}, "exit", "q")
}

// Field names accepted by set
const (
	fieldName    = "name"
	fieldTempID  = "temp-id"
	fieldImageID = "image-id"
	fieldTotal   = "total"
	fieldInitial = "initial"
	fieldConcept = "concept"
	fieldCapture = "capture"
	fieldRarity  = "rarity"
)

func (s *Shell) registerFields() {
	s.fields.register(fieldName)
	s.fields.register(fieldTempID, "id", "tempid")
	s.fields.register(fieldImageID, "image", "imageid")
	s.fields.register(fieldTotal)
	s.fields.register(fieldInitial, "initial-value", "iv")
	s.fields.register(fieldConcept)
	s.fields.register(fieldCapture, "capture-difficulty")
	s.fields.register(fieldRarity)
}

// Run reads lines until quit, end of input or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprintln(s.out, ui.Muted.Render("type help for commands"))

	for !s.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		s.Exec(ctx, scanner.Text())
	}

	return nil
}

// Exec runs one command line and reports whether the shell should stop
func (s *Shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return s.quit
	}

	name, kind, options := s.verbs.resolve(fields[0])
	switch kind {
	case matchNone:
		fmt.Fprintln(s.out, ui.Warn.Render(fmt.Sprintf("unknown command %q", fields[0])))
		return s.quit
	case matchAmbiguous:
		fmt.Fprintln(s.out, ui.Warn.Render(fmt.Sprintf("%q could be %s", fields[0], strings.Join(options, " or "))))
		return s.quit
	}

	if err := s.commands[name].run(ctx, fields[1:]); err != nil {
		fmt.Fprintln(s.out, ui.Warn.Render("error: "+errors.GetMessage(err)))
	}
	s.printNotice()

	return s.quit
}

func (s *Shell) printNotice() {
	notice, shown := s.form.Notice()
	if !shown || notice.Seq == s.lastSeq {
		return
	}
	s.lastSeq = notice.Seq
	fmt.Fprintln(s.out, ui.NoticeText(notice.Message))
}

func (s *Shell) printElements() {
	fmt.Fprintln(s.out, ui.LabelValue("elements", ui.AffinityText(s.form.Elements())))
}

func (s *Shell) cmdSet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.InvalidArgument("usage: set <field> <value>")
	}
	value := strings.Join(args[1:], " ")

	field, kind, _ := s.fields.resolve(args[0])
	if kind == matchNone || kind == matchAmbiguous {
		// set fire 7 reads as element fire 7
		if _, err := pet.ParseElement(args[0]); err == nil {
			return s.cmdElement(ctx, args)
		}
		return errors.InvalidArgumentf("unknown field %q", args[0])
	}

	switch field {
	case fieldName:
		s.form.SetName(value)
	case fieldTempID:
		s.form.SetTempID(value)
	case fieldImageID:
		s.form.SetImageID(value)
	case fieldTotal:
		s.form.SetTotal(value)
	case fieldInitial:
		s.form.SetInitialValue(value)
	case fieldConcept:
		if err := s.form.SetConcept(value); err != nil {
			return err
		}
	case fieldCapture:
		if err := s.form.SetCapture(pet.ParseInt(value)); err != nil {
			return err
		}
	case fieldRarity:
		if err := s.form.SetRarity(pet.ParseInt(value)); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out, ui.LabelValue(field, value))
	return nil
}

func (s *Shell) cmdElement(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.InvalidArgument("usage: element <earth|water|fire|wind> <0-10>")
	}

	e, err := pet.ParseElement(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.InvalidArgumentf("element value %q is not a number", args[1])
	}

	if err := s.form.SetElement(ctx, e, v); err != nil {
		return err
	}
	s.printElements()
	return nil
}

func (s *Shell) cmdPreset(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return s.cmdPresets(ctx, args)
	}

	if _, err := s.form.ApplyPreset(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	s.printElements()
	return nil
}

func (s *Shell) cmdPresets(ctx context.Context, _ []string) error {
	out, err := s.service.ListPresets(ctx, &generator.ListPresetsInput{})
	if err != nil {
		return err
	}
	ui.WritePresets(s.out, out.Presets)
	return nil
}

func (s *Shell) cmdClear(_ context.Context, _ []string) error {
	s.form.ClearElements()
	s.printElements()
	return nil
}

func (s *Shell) cmdGenerate(ctx context.Context, _ []string) error {
	result, err := s.form.Generate(ctx)
	if err != nil {
		return err
	}
	if result != nil {
		ui.WriteResult(s.out, result)
	}
	return nil
}

func (s *Shell) cmdShow(_ context.Context, _ []string) error {
	ui.WriteRequest(s.out, s.form.Snapshot())
	if notice, shown := s.form.Notice(); shown {
		fmt.Fprintln(s.out, ui.NoticeText(notice.Message))
	}
	if result := s.form.Result(); result != nil {
		ui.WriteResult(s.out, result)
	}
	return nil
}

func (s *Shell) cmdConcepts(_ context.Context, _ []string) error {
	ui.WriteConcepts(s.out)
	return nil
}

func (s *Shell) cmdHelp(_ context.Context, _ []string) error {
	fmt.Fprintln(s.out, ui.H2.Render("Commands"))
	for _, name := range s.order {
		c := s.commands[name]
		fmt.Fprintf(s.out, "- %s %s\n", ui.Key.Render(c.usage), ui.Muted.Render(c.summary))
	}
	fmt.Fprintln(s.out, ui.Muted.Render("fields: name, temp-id, image-id, total, initial, concept, capture, rarity"))
	return nil
}

func (s *Shell) cmdQuit(_ context.Context, _ []string) error {
	s.quit = true
	return nil
}
