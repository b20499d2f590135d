package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	actorcodec "github.com/wippyai/actor-codec"
	"github.com/wippyai/actor-codec/blobstore"
	"github.com/wippyai/actor-codec/catalog"
	"github.com/wippyai/actor-codec/core"
	"github.com/wippyai/actor-codec/envelope"
	"github.com/wippyai/actor-codec/eventstreams"
	"github.com/wippyai/actor-codec/extras"
	"github.com/wippyai/actor-codec/httpcodec"
	"github.com/wippyai/actor-codec/keyvalue"
	"github.com/wippyai/actor-codec/logging"
	"github.com/wippyai/actor-codec/messaging"
	"github.com/wippyai/actor-codec/registry"
	"github.com/wippyai/actor-codec/schema"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List catalog operations and exit")
		genFile     = flag.String("gen", "", "Write a sample payload document to this path")
		checkFile   = flag.String("check", "", "Validate every payload in a document")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive catalog browser")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		registry.SetLogger(logger)
	}

	reg, err := catalog.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *list:
		err = listOperations(reg)
	case *genFile != "":
		err = generate(reg, *genFile)
	case *checkFile != "":
		err = check(reg, *checkFile)
	case *interactive:
		err = runInteractive(reg)
	default:
		fmt.Fprintln(os.Stderr, "Usage: codectest -list")
		fmt.Fprintln(os.Stderr, "       codectest -gen <file.json>   (write sample payloads)")
		fmt.Fprintln(os.Stderr, "       codectest -check <file.json> (validate payloads)")
		fmt.Fprintln(os.Stderr, "       codectest -i                 (interactive mode)")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// document is the on-disk payload collection exchanged between codec
// implementations to check wire compatibility.
type document struct {
	Version  string    `json:"version"`
	Payloads []payload `json:"payloads"`
}

type payload struct {
	Operation string `json:"operation"`
	Side      string `json:"side"`
	Data      string `json:"data"`
}

const (
	sideRequest  = "request"
	sideResponse = "response"
)

// sample pairs one representative message with the operation and side
// it travels on. Fresh returns a zero message of the same shape for the
// decode half of a check.
type sample struct {
	op    string
	side  string
	msg   schema.Message
	fresh func() schema.Message
}

func samples() []sample {
	guid := uuid.NewString()
	return []sample{
		{core.OpHealthRequest, sideRequest, &core.HealthRequest{},
			func() schema.Message { return &core.HealthRequest{} }},
		{core.OpGetCapabilityDescriptor, sideResponse, sampleDescriptor(),
			func() schema.Message { return &core.CapabilityDescriptor{} }},
		{messaging.OpPublish, sideRequest,
			&messaging.BrokerMessage{Subject: "events.sample", Body: []byte("sample body")},
			func() schema.Message { return &messaging.BrokerMessage{} }},
		{messaging.OpRequest, sideRequest, messaging.SampleRequestMessage(),
			func() schema.Message { return &messaging.RequestMessage{} }},
		{httpcodec.OpHandleRequest, sideRequest, httpcodec.SampleRequest(),
			func() schema.Message { return &httpcodec.Request{} }},
		{httpcodec.OpHandleRequest, sideResponse, httpcodec.SampleResponse(),
			func() schema.Message { return &httpcodec.Response{} }},
		{keyvalue.OpSet, sideRequest, keyvalue.SampleSetRequest(),
			func() schema.Message { return &keyvalue.SetRequest{} }},
		{keyvalue.OpListRange, sideResponse, keyvalue.SampleListRangeResponse(),
			func() schema.Message { return &keyvalue.ListRangeResponse{} }},
		{blobstore.OpUploadChunk, sideRequest, blobstore.SampleFileChunk(),
			func() schema.Message { return &blobstore.FileChunk{} }},
		{extras.OpRequestGuid, sideResponse, &extras.GeneratorResult{Guid: &guid},
			func() schema.Message { return &extras.GeneratorResult{} }},
		{eventstreams.OpQueryStream, sideRequest, eventstreams.SampleStreamQuery(),
			func() schema.Message { return &eventstreams.StreamQuery{} }},
		{logging.OpWriteLog, sideRequest, logging.SampleWriteLogRequest(),
			func() schema.Message { return &logging.WriteLogRequest{} }},
	}
}

func sampleDescriptor() *core.CapabilityDescriptor {
	d := core.NewDescriptor().
		ID("messaging").
		Name("Sample Broker").
		Version(actorcodec.Version).
		Revision(1).
		LongDescription("A reference descriptor for codec checks").
		WithOperation(messaging.OpPublish, core.DirectionToProvider, "Publishes a message").
		WithOperation(messaging.OpDeliverMessage, core.DirectionToActor, "Delivers a message").
		Build()
	return &d
}

func listOperations(reg *registry.Registry) error {
	fmt.Printf("Catalog version %s, %d operations:\n\n", actorcodec.Version, reg.Len())
	for _, op := range reg.Operations() {
		fmt.Printf("  %-32s %s -> %s\n", op.Name, op.Request.Name(), op.Response.Name())
	}
	return nil
}

func encodeSample(codec *envelope.Codec, s sample) ([]byte, error) {
	if s.side == sideResponse {
		return codec.EncodeResponse(s.op, s.msg)
	}
	return codec.EncodeRequest(s.op, s.msg)
}

func decodePayload(codec *envelope.Codec, side, op string, data []byte, into schema.Message) error {
	if side == sideResponse {
		return codec.DecodeResponse(op, data, into)
	}
	return codec.DecodeRequest(op, data, into)
}

func generate(reg *registry.Registry, path string) error {
	codec := envelope.New(reg)
	doc := document{Version: actorcodec.Version}

	for _, s := range samples() {
		data, err := encodeSample(codec, s)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", s.op, s.side, err)
		}
		doc.Payloads = append(doc.Payloads, payload{
			Operation: s.op,
			Side:      s.side,
			Data:      hex.EncodeToString(data),
		})
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %d payloads to %s\n", len(doc.Payloads), path)
	return nil
}

func check(reg *registry.Registry, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if doc.Version != actorcodec.Version {
		fmt.Printf("Warning: document version %s, codec version %s\n", doc.Version, actorcodec.Version)
	}

	index := make(map[string]sample)
	for _, s := range samples() {
		index[s.op+"/"+s.side] = s
	}

	codec := envelope.New(reg)
	failures := 0
	for _, p := range doc.Payloads {
		s, ok := index[p.Operation+"/"+p.Side]
		if !ok {
			fmt.Printf("SKIP %s (%s): no reference message\n", p.Operation, p.Side)
			continue
		}
		data, err := hex.DecodeString(p.Data)
		if err != nil {
			fmt.Printf("FAIL %s (%s): %v\n", p.Operation, p.Side, err)
			failures++
			continue
		}
		into := s.fresh()
		if err := decodePayload(codec, p.Side, p.Operation, data, into); err != nil {
			fmt.Printf("FAIL %s (%s): %v\n", p.Operation, p.Side, err)
			failures++
			continue
		}
		fmt.Printf("OK   %s (%s): %d bytes\n", p.Operation, p.Side, len(data))
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d payloads failed", failures, len(doc.Payloads))
	}
	fmt.Printf("All %d payloads decoded cleanly\n", len(doc.Payloads))
	return nil
}
