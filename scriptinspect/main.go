package main

import (
	"os"

	btcbytes "btcbytes-sdk"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(err.Error() + "\n")
			os.Exit(0)
		}
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(cfg.logLevel).With().Timestamp().Logger()

	netParams, err := cfg.netParams()
	if err != nil {
		log.Fatal().Err(err).Msg("bad network")
	}

	if cfg.Script != "" {
		script, err := btcbytes.DecodeHex(cfg.Script)
		if err != nil {
			log.Fatal().Err(err).Str("script", cfg.Script).Msg("cannot decode script")
		}
		inspectScript(log, "input", script, netParams)
		return
	}

	privateKey, err := loadPrivateKey(cfg.Mnemonic)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load private key")
	}
	log.Info().Str("pub", btcbytes.BytesToHex(privateKey.PubKey().SerializeCompressed())).Msg("using key")

	addresses, err := deriveAddresses(privateKey, netParams)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot derive addresses")
	}
	for _, named := range addresses {
		pkScript, err := txscript.PayToAddrScript(named.address)
		if err != nil {
			log.Fatal().Err(err).Str("address", named.address.EncodeAddress()).Msg("cannot build script")
		}
		log.Info().Str("kind", named.kind).Str("address", named.address.EncodeAddress()).Msg("derived address")
		inspectScript(log, named.kind, pkScript, netParams)
	}
}

// loadPrivateKey derives the first hardened child of the mnemonic's master key,
// or generates a fresh key when no mnemonic is given.
func loadPrivateKey(mnemonic string) (*btcec.PrivateKey, error) {
	if mnemonic == "" {
		return btcec.NewPrivateKey()
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	childKey, err := masterKey.NewChildKey(bip32.FirstHardenedChild)
	if err != nil {
		return nil, err
	}
	privateKey, _ := btcec.PrivKeyFromBytes(childKey.Key)
	return privateKey, nil
}

type namedAddress struct {
	kind    string
	address btcutil.Address
}

func deriveAddresses(privateKey *btcec.PrivateKey, netParams *chaincfg.Params) ([]namedAddress, error) {
	pkHash := btcutil.Hash160(privateKey.PubKey().SerializeCompressed())

	legacyAddress, err := btcutil.NewAddressPubKeyHash(pkHash, netParams)
	if err != nil {
		return nil, err
	}
	nativeSegwitAddress, err := btcutil.NewAddressWitnessPubKeyHash(pkHash, netParams)
	if err != nil {
		return nil, err
	}
	taprootAddress, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(txscript.ComputeTaprootKeyNoScript(privateKey.PubKey())), netParams)
	if err != nil {
		return nil, err
	}

	return []namedAddress{
		{kind: "legacy", address: legacyAddress},
		{kind: "native segwit", address: nativeSegwitAddress},
		{kind: "taproot", address: taprootAddress},
	}, nil
}

func inspectScript(log zerolog.Logger, kind string, script []byte, netParams *chaincfg.Params) {
	scriptType := btcbytes.ClassifyScript(script)
	event := log.Info().
		Str("kind", kind).
		Str("hex", btcbytes.BytesToHex(script)).
		Stringer("type", scriptType).
		Str("pushdata", btcbytes.BytesToHex(btcbytes.ReadPushdata(script)))

	if len(script) > 0 {
		if op, err := btcbytes.OpcodeFromByte(script[0]); err == nil {
			event = event.Stringer("first_opcode", op)
		} else {
			log.Debug().Err(err).Msg("first byte is not a known opcode")
		}
	}
	if address, err := btcbytes.PushdataAddress(script, netParams); err == nil {
		event = event.Str("recovered_address", address.EncodeAddress())
	}
	event.Msg("inspected script")
}
