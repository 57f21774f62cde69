package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/sqs_consumer/config"
	"github.com/Gunvolt24/sqs_consumer/internal/sqs"
	"github.com/Gunvolt24/sqs_consumer/pkg/compress"
	"github.com/Gunvolt24/sqs_consumer/pkg/logger"
)

// CLI для отправки сообщений в очередь: одна непустая строка входа — одно сообщение.
func main() {
	queue := flag.String("queue", "", "queue name or URL (default: first of CONSUMER_SQS_QUEUES)")
	inputPath := flag.String("in", "", "path to input file, one message per line. If empty, reads from stdin.")
	doCompress := flag.Bool("compress", false, "gzip+base64 each message before sending")
	charset := flag.String("charset", compress.DefaultCharset, "text charset used with -compress")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	target := *queue
	if target == "" && len(cfg.SQS.Queues) > 0 {
		target = cfg.SQS.Queues[0]
	}
	if target == "" {
		fmt.Fprintln(os.Stderr, "no queue given")
		os.Exit(2)
	}

	in := io.Reader(os.Stdin)
	if *inputPath != "" {
		f, oErr := os.Open(*inputPath)
		if oErr != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", oErr)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	bodies, err := readBodies(in, *doCompress, *charset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanupLogger() }()

	clientCfg := sqs.ClientConfig{
		Region:          cfg.SQS.Region,
		Endpoint:        cfg.SQS.Endpoint,
		AccessKeyID:     cfg.SQS.AccessKeyID,
		SecretAccessKey: cfg.SQS.SecretAccessKey,
	}
	awsCfg, err := sqs.LoadAWSConfig(ctx, &clientCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "aws config: %v\n", err)
		os.Exit(1)
	}
	client := sqs.NewClient(awsCfg, &clientCfg, logg)
	defer func() { _ = client.Shutdown() }()

	queueURL, err := client.Resolve(ctx, target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "resolve queue: %v\n", err)
		os.Exit(1)
	}

	sent, err := client.SendBatch(ctx, queueURL, bodies)
	if err != nil {
		fmt.Fprintf(os.Stderr, "send: %v (sent=%d total=%d)\n", err, sent, len(bodies))
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "enqueue ok (queue=%s sent=%d)\n", queueURL, sent)
}

// readBodies — строки входа как есть (снимается только завершающий \r от CRLF);
// строки из одних пробелов пропускаются. При compress каждая строка сжимается в текстовое тело.
func readBodies(r io.Reader, compressBodies bool, charset string) ([]string, error) {
	var bodies []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 256*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if compressBodies {
			encoded, err := compress.EncodeText(line, charset)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			line = encoded
		}
		bodies = append(bodies, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return bodies, nil
}
