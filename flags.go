package shaderc

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// argToggles are the glslc -f flags that switch on one boolean option.
var argToggles = map[string]func(*OptionsDocument){
	"-fauto-bind-uniforms":          func(d *OptionsDocument) { d.AutoBindUniforms = true },
	"-fauto-combined-image-sampler": func(d *OptionsDocument) { d.AutoCombinedImageSampler = true },
	"-fhlsl-iomap":                  func(d *OptionsDocument) { d.HLSLIOMapping = true },
	"-fhlsl-offsets":                func(d *OptionsDocument) { d.HLSLOffsets = true },
	"-fhlsl-functionality1":         func(d *OptionsDocument) { d.HLSLFunctionality1 = true },
	"-fhlsl_functionality1":         func(d *OptionsDocument) { d.HLSLFunctionality1 = true },
	"-fhlsl-16bit-types":            func(d *OptionsDocument) { d.HLSL16BitTypes = true },
	"-fpreserve-bindings":           func(d *OptionsDocument) { d.PreserveBindings = true },
	"-fauto-map-locations":          func(d *OptionsDocument) { d.AutoMapLocations = true },
	"-finvert-y":                    func(d *OptionsDocument) { d.InvertY = true },
	"-fnan-clamp":                   func(d *OptionsDocument) { d.NaNClamp = true },
	"-frelax-vulkan-rules":          func(d *OptionsDocument) { d.VulkanRulesRelaxed = true },
	"-g":                            func(d *OptionsDocument) { d.DebugInfo = true },
	"-w":                            func(d *OptionsDocument) { d.SuppressWarnings = true },
	"-Werror":                       func(d *OptionsDocument) { d.WarningsAsErrors = true },
}

// ParseArgs reads compile options from a glslc style argument string such
// as
//
//	-DUSE_FOG=1 -O --target-env=vulkan1.3 -fubo-binding-base frag 2
//
// Input and output file arguments are not accepted; reading sources is the
// caller's job. -I directories are resolved in fsys.
func ParseArgs(args string, fsys fs.FS) (*CompileOptions, error) {
	words, err := shellwords.Parse(args)
	if err != nil {
		return nil, wrapConfig("split arguments", err)
	}

	doc, err := parseArgWords(words)
	if err != nil {
		return nil, err
	}
	return doc.CompileOptions(fsys)
}

func parseArgWords(words []string) (*OptionsDocument, error) {
	doc := &OptionsDocument{}
	p := &argParser{words: words}

	var err error

	for p.more() {
		arg := p.next()

		if set, ok := argToggles[arg]; ok {
			set(doc)
			continue
		}

		switch {
		case strings.HasPrefix(arg, "-D"):
			def := strings.TrimPrefix(arg, "-D")
			if def == "" {
				if def, err = p.value(arg); err != nil {
					return nil, err
				}
			}
			name, value, _ := strings.Cut(def, "=")
			if name == "" {
				return nil, argError(arg, "macro name is empty")
			}
			if doc.Macros == nil {
				doc.Macros = make(map[string]string)
			}
			doc.Macros[name] = value

		case strings.HasPrefix(arg, "-I"):
			dir := strings.TrimPrefix(arg, "-I")
			if dir == "" {
				if dir, err = p.value(arg); err != nil {
					return nil, err
				}
			}
			doc.IncludePaths = append(doc.IncludePaths, dir)

		case arg == "-O" || arg == "-Os" || arg == "-O0":
			level := strings.TrimPrefix(arg, "-O")
			doc.Optimization = &level

		case strings.HasPrefix(arg, "-x"):
			lang := strings.TrimPrefix(arg, "-x")
			if lang == "" {
				if lang, err = p.value(arg); err != nil {
					return nil, err
				}
			}
			doc.Language = lang

		case strings.HasPrefix(arg, "-std="):
			doc.ForcedVersionProfile = strings.TrimPrefix(arg, "-std=")

		case strings.HasPrefix(arg, "--target-env="):
			doc.TargetEnv = strings.TrimPrefix(arg, "--target-env=")

		case strings.HasPrefix(arg, "--target-spv="):
			doc.TargetSpirv = strings.TrimPrefix(arg, "--target-spv=")

		case strings.HasPrefix(arg, "-flimit="):
			name, value, ok := strings.Cut(strings.TrimPrefix(arg, "-flimit="), "=")
			if !ok {
				return nil, argError(arg, "want -flimit=Name=Value")
			}
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, argError(arg, err.Error())
			}
			if doc.Limits == nil {
				doc.Limits = make(map[string]int)
			}
			doc.Limits[name] = n

		case strings.HasPrefix(arg, "-f") && strings.HasSuffix(arg, "-binding-base"):
			if err := p.bindingBase(doc, arg); err != nil {
				return nil, err
			}

		case arg == "-fresource-set-binding":
			if err := p.resourceSetBinding(doc, arg); err != nil {
				return nil, err
			}

		default:
			return nil, argError(arg, "unknown option")
		}
	}
	return doc, nil
}

type argParser struct {
	words []string
	pos   int
}

func (p *argParser) more() bool { return p.pos < len(p.words) }

func (p *argParser) next() string {
	w := p.words[p.pos]
	p.pos++
	return w
}

func (p *argParser) peek() (string, bool) {
	if !p.more() {
		return "", false
	}
	return p.words[p.pos], true
}

func (p *argParser) value(flag string) (string, error) {
	if !p.more() {
		return "", argError(flag, "missing value")
	}
	return p.next(), nil
}

// optionalStage consumes the next word if it names a shader stage.
func (p *argParser) optionalStage() (string, bool) {
	w, ok := p.peek()
	if !ok {
		return "", false
	}
	if _, err := ParseShaderKind(w); err != nil {
		return "", false
	}
	p.pos++
	return w, true
}

// bindingBase handles -f<kind>-binding-base [stage] <base>.
func (p *argParser) bindingBase(doc *OptionsDocument, arg string) error {
	kind := strings.TrimSuffix(strings.TrimPrefix(arg, "-f"), "-binding-base")
	if _, err := ParseUniformKind(kind); err != nil {
		return argError(arg, "unknown uniform kind")
	}

	stage, hasStage := p.optionalStage()
	raw, err := p.value(arg)
	if err != nil {
		return err
	}
	base, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return argError(arg, err.Error())
	}

	if !hasStage {
		if doc.BindingBase == nil {
			doc.BindingBase = make(map[string]uint32)
		}
		doc.BindingBase[kind] = uint32(base)
		return nil
	}
	if doc.BindingBaseForStage == nil {
		doc.BindingBaseForStage = make(map[string]map[string]uint32)
	}
	if doc.BindingBaseForStage[stage] == nil {
		doc.BindingBaseForStage[stage] = make(map[string]uint32)
	}
	doc.BindingBaseForStage[stage][kind] = uint32(base)
	return nil
}

// resourceSetBinding handles -fresource-set-binding [stage] followed by one
// or more <register> <set> <binding> triples.
func (p *argParser) resourceSetBinding(doc *OptionsDocument, arg string) error {
	stage, hasStage := p.optionalStage()

	var triples []RegisterDocument
	for {
		w, ok := p.peek()
		if !ok || strings.HasPrefix(w, "-") {
			break
		}
		if p.pos+3 > len(p.words) {
			return argError(arg, "want <register> <set> <binding>")
		}
		triples = append(triples, RegisterDocument{
			Register: p.next(),
			Set:      p.next(),
			Binding:  p.next(),
		})
	}
	if len(triples) == 0 {
		return argError(arg, "want <register> <set> <binding>")
	}

	if !hasStage {
		doc.HLSLRegisterSetAndBinding = append(doc.HLSLRegisterSetAndBinding, triples...)
		return nil
	}
	if doc.HLSLRegisterSetAndBindingForStage == nil {
		doc.HLSLRegisterSetAndBindingForStage = make(map[string][]RegisterDocument)
	}
	doc.HLSLRegisterSetAndBindingForStage[stage] = append(doc.HLSLRegisterSetAndBindingForStage[stage], triples...)
	return nil
}

func argError(arg, detail string) *Error {
	return wrapConfig(fmt.Sprintf("argument %q: %s", arg, detail), nil)
}
