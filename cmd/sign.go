package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/Mohsinsiddi/tanglectl/internal/chain"
	"github.com/Mohsinsiddi/tanglectl/internal/tangletoken"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/Mohsinsiddi/tanglectl/internal/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
)

func newSignCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign messages, permits and vote delegations",
		Long: `Produce signatures with a stored wallet.

  message      EIP-191 personal_sign of a plaintext message
  verify       recover the signer of an EIP-191 signature
  permit       EIP-2612 permit for the token (gasless approve)
  delegation   EIP-712 delegation for delegateBySig (gasless delegate)

Permit and delegation read the token's eip712Domain() and nonces() from
the node. With --offline they use --domain-name, --domain-version, the
configured chain_id and --nonce instead.`,
	}
	cmd.AddCommand(newSignMessageCmd(rt), newVerifyCmd(), newSignPermitCmd(rt), newSignDelegationCmd(rt))
	return cmd
}

func newSignMessageCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "message <message>",
		Short: "Sign a message with EIP-191 (personal_sign)",
		Long: `Sign a plaintext message using EIP-191 personal_sign.

The message is prefixed with "\x19Ethereum Signed Message:\n<len>"
before being hashed and signed.

Examples:
  tanglectl sign message "hello world"
  tanglectl sign message "login nonce: 12345" --wallet deployer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := rt.signer()
			if err != nil {
				return err
			}
			sig, err := signer.SignMessage([]byte(args[0]))
			if err != nil {
				return fmt.Errorf("signing failed: %w", err)
			}
			sigHex := hexutil.Encode(sig)
			addr := signer.Address().Hex()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.KeyValueBlock("Message Signed", [][2]string{
				{"Signer", ui.Addr(addr)},
				{"Message", args[0]},
				{"Signature", sigHex},
			}))
			fmt.Fprintln(out, ui.Hint("Verify: tanglectl sign verify \""+args[0]+"\" --sig "+sigHex+" --address "+addr))
			return nil
		},
	}
}

func newVerifyCmd() *cobra.Command {
	var sigHex, expected string

	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Verify an EIP-191 signed message",
		Long: `Recover the signer address from an EIP-191 signature and compare it
to the expected address, if given.

Examples:
  tanglectl sign verify "hello world" --sig 0x... --address 0x...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sigHex == "" {
				return fmt.Errorf("--sig is required")
			}
			sig, err := hex.DecodeString(strings.TrimPrefix(sigHex, "0x"))
			if err != nil {
				return fmt.Errorf("invalid signature hex: %w", err)
			}
			recovered, err := wallet.VerifyMessage([]byte(args[0]), sig)
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			pairs := [][2]string{
				{"Message", args[0]},
				{"Recovered Signer", ui.Addr(recovered.Hex())},
			}
			if expected != "" {
				if strings.EqualFold(recovered.Hex(), expected) {
					pairs = append(pairs, [2]string{"Match", ui.Success("signer matches")})
				} else {
					pairs = append(pairs, [2]string{"Expected", ui.Addr(expected)})
					pairs = append(pairs, [2]string{"Match", ui.Err("signature does NOT match expected address")})
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Signature Verification", pairs))
			return nil
		},
	}
	cmd.Flags().StringVar(&sigHex, "sig", "", "hex signature to verify (required)")
	cmd.Flags().StringVar(&expected, "address", "", "expected signer address")
	return cmd
}

// typedDataFlags select where the EIP-712 domain and nonce come from.
type typedDataFlags struct {
	offline       bool
	domainName    string
	domainVersion string
	nonce         int64
	submit        bool
	tx            txFlags
}

func (f *typedDataFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.offline, "offline", false, "sign without contacting the node")
	cmd.Flags().StringVar(&f.domainName, "domain-name", "TangleToken", "EIP-712 domain name (with --offline)")
	cmd.Flags().StringVar(&f.domainVersion, "domain-version", "1", "EIP-712 domain version (with --offline)")
	cmd.Flags().Int64Var(&f.nonce, "nonce", -1, "signer nonce (default: read nonces() from the token)")
	cmd.Flags().BoolVar(&f.submit, "submit", false, "submit the signature on-chain from the same wallet")
	f.tx.register(cmd)
}

// typedDataContext resolves the domain and nonce for owner.
func (rt *runtime) typedDataContext(ctx context.Context, owner common.Address, f typedDataFlags) (wallet.Domain, *big.Int, error) {
	if f.offline {
		if rt.cfg.ChainID == 0 {
			return wallet.Domain{}, nil, fmt.Errorf("--offline needs chain_id (tanglectl config set chain_id <id> or --chain-id)")
		}
		if f.nonce < 0 {
			return wallet.Domain{}, nil, fmt.Errorf("--offline needs --nonce")
		}
		addr, err := rt.tokenAddress()
		if err != nil {
			return wallet.Domain{}, nil, err
		}
		return wallet.Domain{
			Name:              f.domainName,
			Version:           f.domainVersion,
			ChainID:           big.NewInt(rt.cfg.ChainID),
			VerifyingContract: addr,
		}, big.NewInt(f.nonce), nil
	}

	token, client, err := rt.openToken(ctx)
	if err != nil {
		return wallet.Domain{}, nil, err
	}
	defer client.Close()
	return onchainTypedData(ctx, token, owner, f.nonce)
}

func onchainTypedData(ctx context.Context, token *tangletoken.Instance, owner common.Address, nonce int64) (wallet.Domain, *big.Int, error) {
	d, err := token.EIP712Domain().Call(ctx)
	if err != nil {
		return wallet.Domain{}, nil, fmt.Errorf("reading eip712Domain: %w", err)
	}
	domain := wallet.Domain{
		Name:              d.Name,
		Version:           d.Version,
		ChainID:           d.ChainID,
		VerifyingContract: d.VerifyingContract,
	}
	if nonce >= 0 {
		return domain, big.NewInt(nonce), nil
	}
	n, err := token.Nonces(owner).Call(ctx)
	if err != nil {
		return wallet.Domain{}, nil, fmt.Errorf("reading nonces: %w", err)
	}
	return domain, n.Nonce, nil
}

// parseDeadline accepts a unix timestamp or a duration from now.
func parseDeadline(s string, now time.Time) (*big.Int, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return big.NewInt(now.Add(d).Unix()), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid deadline %q: want a unix timestamp or a duration like 1h", s)
	}
	return n, nil
}

func newSignPermitCmd(rt *runtime) *cobra.Command {
	var (
		flags    typedDataFlags
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "permit <spender> <amount>",
		Short: "Sign an EIP-2612 permit",
		Long: `Sign a permit letting spender move amount of the wallet's tokens.
amount is in token units (e.g. 1.5), converted with 18 decimals.

Examples:
  tanglectl sign permit 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 100
  tanglectl sign permit bob 100 --deadline 24h --submit
  tanglectl sign permit 0xSpender 1 --offline --nonce 0 --chain-id 31337`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := rt.signer()
			if err != nil {
				return err
			}
			spender, err := rt.resolveAccount(args[0])
			if err != nil {
				return err
			}
			value, err := chain.ParseUnits(args[1], tokenDecimals)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			dl, err := parseDeadline(deadline, time.Now())
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd.Context())
			defer cancel()
			domain, nonce, err := rt.typedDataContext(ctx, signer.Address(), flags)
			if err != nil {
				return err
			}

			permit := wallet.Permit{Owner: signer.Address(), Spender: spender, Value: value, Nonce: nonce, Deadline: dl}
			sig, digest, err := signer.SignPermit(domain, permit)
			if err != nil {
				return err
			}

			printTypedSignature(cmd, "Permit Signed", domain, digest, sig, [][2]string{
				{"Owner", ui.Addr(permit.Owner.Hex())},
				{"Spender", ui.Addr(spender.Hex())},
				{"Value", chain.FormatUnits(value, tokenDecimals)},
				{"Nonce", nonce.String()},
				{"Deadline", dl.String()},
			})
			if !flags.submit {
				return nil
			}
			return rt.sendCall(cmd, tangletoken.PermitCall{
				Owner: permit.Owner, Spender: spender, Value: value, Deadline: dl,
				V: sig.V, R: sig.R, S: sig.S,
			}, flags.tx)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&deadline, "deadline", "1h", "unix timestamp or duration from now")
	return cmd
}

func newSignDelegationCmd(rt *runtime) *cobra.Command {
	var (
		flags  typedDataFlags
		expiry string
	)

	cmd := &cobra.Command{
		Use:   "delegation <delegatee>",
		Short: "Sign a vote delegation for delegateBySig",
		Long: `Sign a Delegation(delegatee, nonce, expiry) message. Anyone can submit
it with delegateBySig to move the signer's voting power.

Examples:
  tanglectl sign delegation 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  tanglectl sign delegation self --expiry 168h --submit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := rt.signer()
			if err != nil {
				return err
			}
			delegatee := signer.Address()
			if args[0] != "self" {
				if delegatee, err = rt.resolveAccount(args[0]); err != nil {
					return err
				}
			}
			exp, err := parseDeadline(expiry, time.Now())
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd.Context())
			defer cancel()
			domain, nonce, err := rt.typedDataContext(ctx, signer.Address(), flags)
			if err != nil {
				return err
			}

			del := wallet.Delegation{Delegatee: delegatee, Nonce: nonce, Expiry: exp}
			sig, digest, err := signer.SignDelegation(domain, del)
			if err != nil {
				return err
			}

			printTypedSignature(cmd, "Delegation Signed", domain, digest, sig, [][2]string{
				{"Signer", ui.Addr(signer.Address().Hex())},
				{"Delegatee", ui.Addr(delegatee.Hex())},
				{"Nonce", nonce.String()},
				{"Expiry", exp.String()},
			})
			if !flags.submit {
				return nil
			}
			return rt.sendCall(cmd, tangletoken.DelegateBySigCall{
				Delegatee: delegatee, Nonce: nonce, Expiry: exp,
				V: sig.V, R: sig.R, S: sig.S,
			}, flags.tx)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&expiry, "expiry", "1h", "unix timestamp or duration from now")
	return cmd
}

func printTypedSignature(cmd *cobra.Command, title string, d wallet.Domain, digest common.Hash, sig wallet.Signature, pairs [][2]string) {
	pairs = append(pairs,
		[2]string{"Domain", fmt.Sprintf("%s v%s chain %s", d.Name, d.Version, d.ChainID)},
		[2]string{"Contract", ui.Addr(d.VerifyingContract.Hex())},
		[2]string{"Digest", digest.Hex()},
		[2]string{"v", fmt.Sprintf("%d", sig.V)},
		[2]string{"r", hexutil.Encode(sig.R[:])},
		[2]string{"s", hexutil.Encode(sig.S[:])},
		[2]string{"Signature", hexutil.Encode(sig.Bytes())},
	)
	fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock(title, pairs))
}
