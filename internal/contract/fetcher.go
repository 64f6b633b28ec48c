package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/abi"
	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Fetcher retrieves ABIs from Etherscan-compatible explorers or URLs.
type Fetcher struct {
	client   *http.Client
	apiKey   string
	attempts uint
}

// NewFetcher creates a new ABI fetcher.
func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: 15 * time.Second},
		apiKey:   apiKey,
		attempts: 3,
	}
}

// FetchFromExplorer fetches the verified ABI of address.
// explorerAPIURL example: "https://api.etherscan.io"
func (f *Fetcher) FetchFromExplorer(ctx context.Context, explorerAPIURL, address string) ([]abi.JSONEntry, error) {
	url := fmt.Sprintf(
		"%s/api?module=contract&action=getabi&address=%s&apikey=%s",
		strings.TrimRight(explorerAPIURL, "/"), address, f.apiKey,
	)

	body, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching ABI: %w", err)
	}

	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Result  string `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing ABI response: %w", err)
	}
	if result.Status != "1" {
		return nil, fmt.Errorf("explorer error: %s: %s", result.Message, result.Result)
	}
	return parseABI([]byte(result.Result))
}

// FetchFromURL fetches a raw ABI array or an artifact from any URL.
func (f *Fetcher) FetchFromURL(ctx context.Context, url string) ([]abi.JSONEntry, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching ABI from URL: %w", err)
	}
	return parseABIOrArtifact(body, url)
}

// get retries transport failures and 5xx responses.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := f.client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode >= 500 {
				return fmt.Errorf("HTTP %d", resp.StatusCode)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("HTTP %d", resp.StatusCode))
			}
			body = data
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(f.attempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	return body, err
}

// LoadFromArtifact loads an ABI from a local file that is either:
//   - a raw ABI JSON array: [{"type":"function",...}, ...]
//   - a Hardhat/Foundry artifact: {"abi":[...],"bytecode":"0x...",...}
func LoadFromArtifact(path string) ([]abi.JSONEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read ABI file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("ABI file is empty: %s", path)
	}
	return parseABIOrArtifact(data, path)
}

func parseABIOrArtifact(data []byte, source string) ([]abi.JSONEntry, error) {
	var artifact struct {
		ABI json.RawMessage `json:"abi"`
	}
	if json.Unmarshal(data, &artifact) == nil && len(artifact.ABI) > 1 && artifact.ABI[0] == '[' {
		data = artifact.ABI
	}
	entries, err := parseABI(data)
	if err != nil {
		return nil, err
	}
	if err := validateABI(entries, source); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseABI(data []byte) ([]abi.JSONEntry, error) {
	var entries []abi.JSONEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			return nil, fmt.Errorf("file is a JSON object, not an ABI array; a Hardhat/Foundry artifact must have an \"abi\" key")
		}
		return nil, fmt.Errorf("invalid ABI JSON: expected an array of function/event definitions: %w", err)
	}
	return entries, nil
}

// ArtifactFull holds the ABI and bytecode parsed from a compiler artifact.
type ArtifactFull struct {
	ABI              []abi.JSONEntry
	Bytecode         []byte // creation code
	DeployedBytecode []byte // runtime code, empty if the artifact omits it
}

// LoadArtifactFull loads the ABI and the creation bytecode from a Hardhat
// or Foundry artifact JSON file. It fails if the file has no "abi" key or
// carries no bytecode (interfaces, abstract contracts).
func LoadArtifactFull(path string) (*ArtifactFull, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read artifact file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("artifact file is empty: %s", path)
	}

	var raw struct {
		ABI              json.RawMessage `json:"abi"`
		Bytecode         json.RawMessage `json:"bytecode"`
		DeployedBytecode json.RawMessage `json:"deployedBytecode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid artifact JSON: %w", err)
	}

	if len(raw.ABI) < 2 || raw.ABI[0] != '[' {
		return nil, fmt.Errorf("artifact has no valid \"abi\" array; is this a raw ABI file? %s", path)
	}
	entries, err := parseABI(raw.ABI)
	if err != nil {
		return nil, fmt.Errorf("parsing artifact ABI: %w", err)
	}
	if err := validateABI(entries, path); err != nil {
		return nil, err
	}

	if len(raw.Bytecode) == 0 {
		return nil, fmt.Errorf("artifact has no bytecode; cannot deploy an interface or abstract contract: %s", path)
	}
	code, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("extracting bytecode from artifact: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("artifact bytecode is empty; cannot deploy an interface or abstract contract: %s", path)
	}

	out := &ArtifactFull{ABI: entries, Bytecode: code}
	if len(raw.DeployedBytecode) > 0 {
		if out.DeployedBytecode, err = decodeBytecode(raw.DeployedBytecode); err != nil {
			return nil, fmt.Errorf("extracting deployed bytecode: %w", err)
		}
	}
	return out, nil
}

func decodeBytecode(raw json.RawMessage) ([]byte, error) {
	s, err := extractBytecodeHex(raw)
	if err != nil {
		return nil, err
	}
	if s == "" || s == "0x" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	if strings.Contains(s, "__") {
		return nil, fmt.Errorf("bytecode has unlinked library placeholders")
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode hex: %w", err)
	}
	return b, nil
}

// extractBytecodeHex handles the two common artifact formats:
//   - Hardhat:  "bytecode": "0x608060..."          (JSON string)
//   - Foundry:  "bytecode": {"object": "0x608060..."} (JSON object)
func extractBytecodeHex(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return strings.TrimSpace(str), nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Object != "" {
		return strings.TrimSpace(obj.Object), nil
	}

	return "", fmt.Errorf("bytecode field is neither a hex string nor a {\"object\":\"0x...\"} object")
}

// validateABI checks that the parsed ABI has at least one function or event.
func validateABI(entries []abi.JSONEntry, source string) error {
	if len(entries) == 0 {
		return fmt.Errorf("ABI is empty (no functions or events found): %s", source)
	}
	for _, e := range entries {
		if e.Type == abi.KindFunction || e.Type == abi.KindEvent || e.Type == abi.KindConstructor {
			return nil
		}
	}
	return fmt.Errorf("ABI has %d entries but none are functions or events: %s", len(entries), source)
}
