package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/vedadiyan/protoenum"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

func main() {
	var (
		file        = flag.String("file", "", "Path to the enum definition (YAML)")
		encode      = flag.String("encode", "", "Declared values to encode (comma-separated)")
		decode      = flag.String("decode", "", "Hex encoded wire bytes to decode")
		interpreted = flag.Bool("interpreted", false, "Use the interpreted codec instead of the dispatcher")
		verbose     = flag.Bool("v", false, "Log codec construction")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: enumplan -file enum.yaml [-encode 1,2] [-decode 0a0b]")
		os.Exit(2)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fail(err)
		}
		defer logger.Sync()
		protoenum.SetLogger(logger)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fail(err)
	}
	definition, err := ParseDefinition(data)
	if err != nil {
		fail(err)
	}
	enum, err := definition.EnumType()
	if err != nil {
		fail(err)
	}

	var opts []protoenum.RegistryOption
	if *interpreted {
		opts = append(opts, protoenum.WithInterpreted())
	}
	registry := protoenum.NewRegistry(opts...)
	codec, err := registry.Codec(enum)
	if err != nil {
		fail(err)
	}

	fmt.Println(Plan(definition, enum))

	if *encode != "" {
		fmt.Println(titleStyle.Render("encode"))
		for _, s := range strings.Split(*encode, ",") {
			fmt.Println(encodeOne(codec, strings.TrimSpace(s)))
		}
	}

	if *decode != "" {
		fmt.Println(titleStyle.Render("decode"))
		raw, err := hex.DecodeString(*decode)
		if err != nil {
			fail(err)
		}
		buffer := protoenum.NewBuffer(raw)
		for buffer.Len() != 0 {
			value, err := codec.Decode(buffer)
			if err != nil {
				fmt.Println(errorStyle.Render(err.Error()))
				break
			}
			v, _ := enum.ValueOf(value)
			fmt.Printf("%s %s\n", valueStyle.Render(v.String()), labelStyle.Render(definition.MemberName(v)))
		}
	}
}

// Plan renders the representation and decode groups of enum.
func Plan(definition *Definition, enum *protoenum.EnumType) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(enum.Name()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("representation:"), valueStyle.Render(enum.Kind().String()))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("wire primitive:"), valueStyle.Render(enum.Kind().Primitive().String()))

	if enum.Map() == nil {
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("map:"), valueStyle.Render("none"))
		return b.String()
	}

	groups, err := protoenum.Partition(enum.Map().Entries())
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		return b.String()
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("entries:"), valueStyle.Render(strconv.Itoa(enum.Map().Len())))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("groups:"), valueStyle.Render(strconv.Itoa(len(groups))))
	for _, group := range groups {
		members := make([]string, len(group.Members))
		for i, member := range group.Members {
			members[i] = fmt.Sprintf("%d=%s", member.Wire, nameOr(definition.MemberName(member.Declared), member.Declared.String()))
		}
		kind := "jump"
		if group.Len() == 1 {
			kind = "equal"
		}
		fmt.Fprintf(&b, "\n  %s [%d..%d] %s", labelStyle.Render(kind), group.Anchor, group.Last(), strings.Join(members, " "))
	}
	return b.String()
}

func encodeOne(codec protoenum.Codec, s string) string {
	kind := codec.Type().Kind()
	var value protoenum.Value
	if kind.Signed() {
		v, err := strconv.ParseInt(s, 10, kind.Bits())
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		value = protoenum.SignedValue(kind, v)
	} else {
		v, err := strconv.ParseUint(s, 10, kind.Bits())
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		value = protoenum.UnsignedValue(kind, v)
	}
	data, err := protoenum.Marshal(codec, codec.Type().Materialize(value))
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return fmt.Sprintf("%s %s", valueStyle.Render(s), labelStyle.Render(hex.EncodeToString(data)))
}

func nameOr(name, fallback string) string {
	if len(name) == 0 {
		return fallback
	}
	return name
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	os.Exit(1)
}
