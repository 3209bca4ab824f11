package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/base16384"
	"github.com/arloliu/base16384/internal/hash"
	"github.com/arloliu/base16384/internal/pool"
)

const (
	encodedSuffix = ".b16384"
	decodedSuffix = ".out"
	stdioName     = "-"

	demoText = "Example"
)

var errVerifyFailed = errors.New("verification failed: decoded output differs from input")

type runner struct {
	cfg    Config
	enc    *base16384.Encoding
	logger zerolog.Logger

	stdin  io.Reader
	stdout io.Writer
}

func newRunner(cfg Config, logger zerolog.Logger, stdin io.Reader, stdout io.Writer) (*runner, error) {
	enc, err := cfg.encoding()
	if err != nil {
		return nil, err
	}

	return &runner{
		cfg:    cfg,
		enc:    enc,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

// run processes every input. No inputs, or a single "-", means stdin.
func (r *runner) run(ctx context.Context, inputs []string) error {
	if r.cfg.Demo {
		return writeDemo(r.stdout)
	}

	if len(inputs) == 0 {
		inputs = []string{stdioName}
	}

	if r.cfg.Output != "" && len(inputs) > 1 {
		return errors.New("-o requires a single input")
	}

	if len(inputs) == 1 {
		return r.processFile(ctx, inputs[0], r.outputPath(inputs[0]))
	}

	if err := r.checkOutputs(inputs); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Concurrency)

	for _, input := range inputs {
		input := input
		eg.Go(func() error {
			return r.processFile(ctx, input, r.outputPath(input))
		})
	}

	return eg.Wait()
}

// checkOutputs rejects input lists where two files would be written to the
// same output path, including the same file named twice.
func (r *runner) checkOutputs(inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		if input == stdioName {
			return errors.New("stdin cannot be combined with other inputs")
		}

		output := filepath.Clean(r.outputPath(input))
		if prev, ok := seen[output]; ok {
			return fmt.Errorf("inputs %s and %s both write %s", prev, input, output)
		}
		seen[output] = input
	}

	return nil
}

// outputPath returns where the result for input goes; "-" is stdout.
func (r *runner) outputPath(input string) string {
	if r.cfg.Output != "" {
		return r.cfg.Output
	}
	if input == stdioName {
		return stdioName
	}

	if r.cfg.Mode == modeEncode {
		return input + encodedSuffix
	}
	if trimmed, ok := strings.CutSuffix(input, encodedSuffix); ok && trimmed != "" {
		return trimmed
	}

	return input + decodedSuffix
}

func (r *runner) processFile(ctx context.Context, input, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	logger := r.logger.With().Str("input", input).Str("mode", r.cfg.Mode).Logger()

	buf := pool.GetInputBuffer()
	defer pool.PutInputBuffer(buf)

	if err := r.readInput(input, buf); err != nil {
		return err
	}

	var (
		result []byte
		err    error
	)
	if r.cfg.Mode == modeEncode {
		result, err = r.encode(buf.Bytes())
	} else {
		result, err = r.decode(buf.Bytes())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	logger.Debug().
		Int("in_bytes", buf.Len()).
		Int("out_bytes", len(result)).
		Str("digest", hash.Hex(buf.Bytes())).
		Msg("processed input")

	if err := r.writeOutput(output, result); err != nil {
		return err
	}

	if output != stdioName {
		logger.Info().Str("output", output).Msg("wrote output")
	}

	return nil
}

func (r *runner) readInput(input string, buf *pool.ByteBuffer) error {
	if input == stdioName {
		if _, err := buf.ReadFrom(r.stdin); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}

		return nil
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	if _, err := buf.ReadFrom(f); err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	return nil
}

func (r *runner) writeOutput(output string, data []byte) error {
	if output == stdioName {
		_, err := r.stdout.Write(data)
		return err
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// encode returns data as UTF-8 base16384 text, or as UTF-16 when configured.
func (r *runner) encode(data []byte) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if r.cfg.UTF16 {
		out, err = r.enc.EncodeToUTF16(data)
	} else {
		var s string
		s, err = r.enc.EncodeToString(data)
		out = []byte(s)
	}
	if err != nil {
		return nil, err
	}

	if r.cfg.Verify {
		decoded, err := r.decode(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errVerifyFailed, err)
		}
		if !bytes.Equal(data, decoded) {
			return nil, fmt.Errorf("%w: digest %s, got %s", errVerifyFailed, hash.Hex(data), hash.Hex(decoded))
		}
		r.logger.Debug().Str("digest", hash.Hex(data)).Msg("verified round trip")
	}

	return out, nil
}

func (r *runner) decode(data []byte) ([]byte, error) {
	if r.cfg.UTF16 {
		return r.enc.DecodeUTF16(data)
	}

	// Text files commonly carry a UTF-8 BOM or a trailing newline.
	text := string(bytes.TrimRight(data, "\r\n"))
	text = strings.TrimPrefix(text, "\uFEFF")

	return r.enc.DecodeString(text)
}

func writeDemo(w io.Writer) error {
	encoded := base16384.EncodeText(demoText)
	decoded := base16384.DecodeText(encoded)

	_, err := fmt.Fprintf(w, "Original String: %s\nBase16384 Encoded String: %s\nBase16384 Decoded String: %s\n",
		demoText, encoded, decoded)

	return err
}
