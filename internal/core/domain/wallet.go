package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// WalletNetwork identifies a supported blockchain network.
type WalletNetwork string

const (
	NetworkEthereum WalletNetwork = "ethereum"
	NetworkBitcoin  WalletNetwork = "bitcoin"
	NetworkBSC      WalletNetwork = "bsc"
)

type networkConfig struct {
	Name        string
	Symbol      string
	ExplorerURL string
	Pattern     *regexp.Regexp
}

var walletNetworks = map[WalletNetwork]networkConfig{
	NetworkEthereum: {
		Name:        "Ethereum",
		Symbol:      "ETH",
		ExplorerURL: "https://etherscan.io/address",
		Pattern:     regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`),
	},
	NetworkBitcoin: {
		Name:        "Bitcoin",
		Symbol:      "BTC",
		ExplorerURL: "https://blockstream.info/address",
		Pattern:     regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$|^bc1[a-z0-9]{39,59}$`),
	},
	NetworkBSC: {
		Name:        "BNB Smart Chain",
		Symbol:      "BNB",
		ExplorerURL: "https://bscscan.com/address",
		Pattern:     regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`),
	},
}

// SupportedNetwork reports whether the network string names a known chain.
func SupportedNetwork(network string) bool {
	_, ok := walletNetworks[WalletNetwork(network)]
	return ok
}

// WalletAddress is a per-network validated wallet address value object.
type WalletAddress struct {
	Address string        `json:"address" bson:"address"`
	Network WalletNetwork `json:"network" bson:"network"`
}

// NewWalletAddress validates the address against the network's pattern and
// returns the normalized value object. Unknown networks and pattern
// mismatches surface as ErrInvalidWallet.
func NewWalletAddress(address, network string) (WalletAddress, error) {
	if network == "" {
		network = string(NetworkEthereum)
	}
	cfg, ok := walletNetworks[WalletNetwork(network)]
	if !ok {
		return WalletAddress{}, ErrInvalidWallet
	}
	address = strings.TrimSpace(address)
	if address == "" || !cfg.Pattern.MatchString(address) {
		return WalletAddress{}, ErrInvalidWallet
	}
	return WalletAddress{Address: address, Network: WalletNetwork(network)}, nil
}

// Equals compares address and network.
func (w WalletAddress) Equals(other WalletAddress) bool {
	return w.Address == other.Address && w.Network == other.Network
}

// Short returns a truncated display form, e.g. "0x1234...abcd".
func (w WalletAddress) Short() string {
	if len(w.Address) <= 12 {
		return w.Address
	}
	n := len(w.Address) / 3
	if n > 6 {
		n = 6
	}
	return w.Address[:n] + "..." + w.Address[len(w.Address)-n:]
}

// ExplorerURL returns the block-explorer page for the address.
func (w WalletAddress) ExplorerURL() string {
	cfg, ok := walletNetworks[w.Network]
	if !ok {
		return "#" + w.Address
	}
	return fmt.Sprintf("%s/%s", cfg.ExplorerURL, w.Address)
}

func (w WalletAddress) String() string {
	cfg, ok := walletNetworks[w.Network]
	if !ok {
		return w.Address
	}
	return fmt.Sprintf("%s (%s)", w.Address, cfg.Name)
}
