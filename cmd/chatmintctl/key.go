package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"chatmint-studio/internal/adapter/story"
	"chatmint-studio/internal/service"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

type encryptedKey struct {
	Signer              string `json:"signer"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}

func newKeyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Registrar signing key helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a hex private key for story.encrypted_private_key",
		Long: `Encrypt a hex private key for story.encrypted_private_key.

The key is read from stdin and encrypted with aes.key, or with
aes.passphrase and aes.salt, from the loaded config. The signer address
is printed so the wallet can be funded before use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			enc, err := service.NewAESEncryptionServiceFromSecrets(cfg.AES.Key, cfg.AES.Passphrase, cfg.AES.Salt)
			if err != nil {
				return err
			}

			plain, err := readSecret(cmd.InOrStdin())
			if err != nil {
				return err
			}
			key, err := story.ParsePrivateKey(plain)
			if err != nil {
				return err
			}
			ciphertext, err := enc.Encrypt(plain)
			if err != nil {
				return err
			}

			res := encryptedKey{
				Signer:              crypto.PubkeyToAddress(key.PublicKey).Hex(),
				EncryptedPrivateKey: ciphertext,
			}
			return opts.print(cmd.OutOrStdout(), res, func(w io.Writer) error {
				fmt.Fprintf(w, "signer: %s\n", res.Signer)
				fmt.Fprintf(w, "story.encrypted_private_key: %s\n", res.EncryptedPrivateKey)
				return nil
			})
		},
	})

	return cmd
}

func readSecret(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading key: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no key on stdin")
	}
	return line, nil
}
