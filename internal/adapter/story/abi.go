package story

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// registrationWorkflowsABI covers the one RegistrationWorkflows method the
// dashboard calls.
const registrationWorkflowsABI = `[{
	"type": "function",
	"name": "mintAndRegisterIp",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "spgNftContract", "type": "address"},
		{"name": "recipient", "type": "address"},
		{"name": "ipMetadata", "type": "tuple", "components": [
			{"name": "ipMetadataURI", "type": "string"},
			{"name": "ipMetadataHash", "type": "bytes32"},
			{"name": "nftMetadataURI", "type": "string"},
			{"name": "nftMetadataHash", "type": "bytes32"}
		]},
		{"name": "allowDuplicates", "type": "bool"}
	],
	"outputs": [
		{"name": "ipId", "type": "address"},
		{"name": "tokenId", "type": "uint256"}
	]
}]`

// ipAssetRegistryABI covers the event emitted when an IP asset is created.
const ipAssetRegistryABI = `[{
	"type": "event",
	"name": "IPRegistered",
	"anonymous": false,
	"inputs": [
		{"name": "ipId", "type": "address", "indexed": false},
		{"name": "chainId", "type": "uint256", "indexed": true},
		{"name": "tokenContract", "type": "address", "indexed": true},
		{"name": "tokenId", "type": "uint256", "indexed": true},
		{"name": "name", "type": "string", "indexed": false},
		{"name": "uri", "type": "string", "indexed": false},
		{"name": "registrationDate", "type": "uint256", "indexed": false}
	]
}]`

const (
	methodMintAndRegisterIP = "mintAndRegisterIp"
	eventIPRegistered       = "IPRegistered"
)

var (
	workflowsABI = mustParseABI(registrationWorkflowsABI)
	registryABI  = mustParseABI(ipAssetRegistryABI)
)

// ipMetadataArg mirrors the WorkflowStructs.IPMetadata tuple. Field names
// must match the ABI component names after camel-casing.
type ipMetadataArg struct {
	IpMetadataURI   string
	IpMetadataHash  [32]byte
	NftMetadataURI  string
	NftMetadataHash [32]byte
}

// ipRegisteredEvent holds a decoded IPRegistered log.
type ipRegisteredEvent struct {
	IpId             common.Address
	ChainId          *big.Int
	TokenContract    common.Address
	TokenId          *big.Int
	Name             string
	Uri              string
	RegistrationDate *big.Int
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parsing contract abi: %v", err))
	}
	return parsed
}
