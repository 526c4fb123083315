// Command zhoconv converts text between Simplified and Traditional
// Chinese on the command line.
//
//   zhoconv convert -c s2twp -p -i input.txt -o output.txt
//   zhoconv convert -c auto < input.txt
//   zhoconv watch -c t2s -dir ./drop -out ./done
//   zhoconv list
//
// Flag defaults may be set through environment variables (optionally
// from a .env file): ZHOCONV_CONFIG for the profile, ZHOCONV_PUNCT=1
// for punctuation substitution.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/laisuk/zhoconv"
	"github.com/laisuk/zhoconv/internal/textio"
)

var logger = log.New(os.Stderr, "zhoconv: ", log.LstdFlags)

func main() {
	_ = godotenv.Load()
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "convert":
		err = runConvert(os.Args[2:])
	case "watch":
		err = runWatch(os.Args[2:])
	case "list":
		err = runList()
	case "-h", "-help", "--help", "help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: zhoconv <command> [flags]

commands:
  convert   convert a file or stdin to stdout or a file
  watch     watch a directory and convert text files dropped into it
  list      list the supported conversion profiles`)
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	config := fs.String("c", envDefault("ZHOCONV_CONFIG", "s2t"), "conversion profile, or 'auto' to detect")
	punct := fs.Bool("p", envBool("ZHOCONV_PUNCT"), "convert punctuation marks as well")
	in := fs.String("i", "", "input file (default stdin)")
	out := fs.String("o", "", "output file (default stdout)")
	inEnc := fs.String("in-enc", "utf-8", "input charset: utf-8, gbk, gb18030 or big5")
	outEnc := fs.String("out-enc", "utf-8", "output charset: utf-8, gbk, gb18030 or big5")
	parallel := fs.Bool("parallel", false, "fan large inputs out to worker goroutines")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var text string
	if *in == "" {
		raw, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text, err = textio.Decode(raw, *inEnc)
		if err != nil {
			return err
		}
	} else {
		var err error
		text, err = textio.ReadFile(*in, *inEnc)
		if err != nil {
			return err
		}
	}

	profile := *config
	if strings.EqualFold(profile, "auto") {
		profile = autoProfile(text)
		logger.Printf("auto-detected profile %s", profile)
	}
	cc, err := zhoconv.NewFromConfig(profile)
	if err != nil {
		return err
	}
	defer cc.Close()
	if msg := cc.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	cc.SetParallel(*parallel)

	converted := cc.ConvertText(text, *punct)
	if msg := cc.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	if *out == "" {
		raw, err := textio.Encode(converted, *outEnc)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(raw)
		return err
	}
	return textio.WriteFile(*out, converted, *outEnc)
}

// autoProfile picks a profile from the input script and the user's
// locale. Traditional input always goes to Simplified. Simplified input
// goes to the Traditional standard the locale asks for, falling back to
// plain s2t when the locale is not a Chinese one.
func autoProfile(text string) string {
	if zhoconv.ZhoCheck(text) == zhoconv.ScriptTraditional {
		return "t2s"
	}
	userLocale, err := jj.DetectIETF()
	if err != nil {
		return "s2t"
	}
	lang := language.Make(userLocale)
	region, _ := lang.Region()
	switch region.String() {
	case "TW":
		return "s2twp"
	case "HK", "MO":
		return "s2hk"
	}
	return "s2t"
}

func runWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	config := fs.String("c", envDefault("ZHOCONV_CONFIG", "s2t"), "conversion profile")
	punct := fs.Bool("p", envBool("ZHOCONV_PUNCT"), "convert punctuation marks as well")
	dir := fs.String("dir", ".", "directory to watch for new .txt files")
	out := fs.String("out", "", "output directory (default: alongside input, with profile suffix)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cc, err := zhoconv.NewFromConfig(*config)
	if err != nil {
		return err
	}
	defer cc.Close()
	if msg := cc.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	if *out != "" {
		if err := os.MkdirAll(*out, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", *out, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(*dir); err != nil {
		return fmt.Errorf("watch %s: %w", *dir, err)
	}
	logger.Printf("watching %s (profile %s)", *dir, cc.Config())

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".txt" {
				continue
			}
			if err := convertFile(cc, event.Name, *out, *punct); err != nil {
				logger.Printf("convert %s: %v", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("watcher error: %v", err)
		}
	}
}

func convertFile(cc *zhoconv.Converter, path, outDir string, punct bool) error {
	text, err := textio.ReadFile(path, "utf-8")
	if err != nil {
		return err
	}
	converted := cc.ConvertText(text, punct)
	if msg := cc.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	target := outputPath(path, outDir, cc.Config().String())
	if target == path {
		return fmt.Errorf("output path equals input path, skipping")
	}
	if err := textio.WriteFile(target, converted, "utf-8"); err != nil {
		return err
	}
	logger.Printf("converted %s -> %s", path, target)
	return nil
}

func outputPath(path, outDir, profile string) string {
	base := filepath.Base(path)
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(filepath.Dir(path), stem+"."+profile+ext)
}

func runList() error {
	for _, name := range zhoconv.SupportedConfigs() {
		fmt.Println(name)
	}
	return nil
}
