package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"
)

func newKeccakCmd(rt *runtime) *cobra.Command {
	var role bool

	cmd := &cobra.Command{
		Use:   "keccak <input>",
		Short: "Compute Keccak-256 hash of text or hex input",
		Long: `Compute the Keccak-256 hash of the given input.

If the input starts with 0x, it's treated as raw hex bytes.
Otherwise, it's treated as a UTF-8 string.

With --role the input is an AccessControl role name and the output also
says whether TangleToken defines it.

Examples:
  tanglectl keccak "transfer(address,uint256)"   # function selector
  tanglectl keccak --role MINTER_ROLE            # role id
  tanglectl keccak 0xdeadbeef                    # hash of raw bytes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			data, inputType, err := keccakInput(input)
			if err != nil {
				return err
			}
			hash := keccak256(data)

			pairs := [][2]string{
				{"Input", input},
				{"Type", inputType},
				{"Keccak-256", ui.Val("0x" + hex.EncodeToString(hash))},
				{"Selector (4 bytes)", "0x" + hex.EncodeToString(hash[:4])},
			}
			if role {
				var id [32]byte
				copy(id[:], hash)
				known := tangletoken.RoleName(id)
				if strings.HasPrefix(known, "0x") {
					known = "not a TangleToken role"
				}
				pairs = append(pairs, [2]string{"Role", known})
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Keccak-256 Hash", pairs))
			return nil
		},
	}
	cmd.Flags().BoolVar(&role, "role", false, "treat the input as a role name")
	return cmd
}

func keccakInput(input string) ([]byte, string, error) {
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		raw, err := hex.DecodeString(input[2:])
		if err != nil {
			return nil, "", fmt.Errorf("invalid hex input: %w", err)
		}
		return raw, "hex", nil
	}
	return []byte(input), "text", nil
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}
