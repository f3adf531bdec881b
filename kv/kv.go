package kv

import (
	"errors"
	"slices"
	"strings"

	sdk "github.com/capstan-project/sdk"
	"github.com/capstan-project/sdk/sorted"
	proto "github.com/tarmac-project/protobuf-go/sdk/kvstore"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "kvstore"
	fnGet          = "get"
	fnSet          = "set"
	fnDelete       = "delete"
	fnKeys         = "keys"
)

var (
	// ErrInvalidKey indicates an empty key.
	ErrInvalidKey = errors.New("key is invalid")

	// ErrInvalidValue indicates an empty value for a Set call.
	ErrInvalidValue = errors.New("value is invalid")

	// ErrMarshalRequest wraps failures while encoding the request payload.
	ErrMarshalRequest = errors.New("failed to marshal request")

	// ErrUnmarshalResponse wraps failures while decoding the host response.
	ErrUnmarshalResponse = errors.New("failed to unmarshal response")
)

// HostCall defines the waPC host function signature used by KV operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client defines the key-value capability interface.
type Client interface {
	// Get fetches the value stored under key.
	Get(key string) ([]byte, error)

	// Set stores value under key.
	Set(key string, value []byte) error

	// Delete removes the value stored under key.
	Delete(key string) error

	// Keys lists the keys currently stored by the host.
	Keys() ([]string, error)

	// KeysInRange lists the stored keys between from and to inclusive,
	// in lexical order.
	KeysInRange(from, to string) ([]string, error)

	// Close releases resources held by the client.
	Close() error
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used for KV operations.
	HostCall HostCall
}

// KVClient is the key-value capability client implementation.
type KVClient struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
}

// Ensure KVClient satisfies the Client interface at compile time.
var _ Client = (*KVClient)(nil)

// New creates a KV client with namespace defaults and optional host-call override.
func New(config Config) (*KVClient, error) {
	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &KVClient{runtime: config.SDKConfig.Normalize(), hostCall: hostCall}, nil
}

// Get fetches the value stored under key.
func (c *KVClient) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	req := &proto.KVStoreGet{Key: key}
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fnGet, b)
	if callErr != nil && len(respBytes) == 0 {
		return nil, errors.Join(sdk.ErrHostCall, callErr)
	}

	var resp proto.KVStoreGetResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		return nil, joinUnmarshalErr(callErr, unmarshalErr)
	}

	if statusErr := sdk.ValidateStatus(resp.GetStatus(), callErr); statusErr != nil {
		return nil, statusErr
	}

	return resp.GetData(), nil
}

// Set stores value under key.
func (c *KVClient) Set(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}
	if len(value) == 0 {
		return ErrInvalidValue
	}

	req := &proto.KVStoreSet{Key: key, Data: value}
	b, err := req.MarshalVT()
	if err != nil {
		return errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fnSet, b)
	if callErr != nil && len(respBytes) == 0 {
		return errors.Join(sdk.ErrHostCall, callErr)
	}

	var resp proto.KVStoreSetResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		return joinUnmarshalErr(callErr, unmarshalErr)
	}

	return sdk.ValidateStatus(resp.GetStatus(), callErr)
}

// Delete removes the value stored under key.
func (c *KVClient) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	req := &proto.KVStoreDelete{Key: key}
	b, err := req.MarshalVT()
	if err != nil {
		return errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fnDelete, b)
	if callErr != nil && len(respBytes) == 0 {
		return errors.Join(sdk.ErrHostCall, callErr)
	}

	var resp proto.KVStoreDeleteResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		return joinUnmarshalErr(callErr, unmarshalErr)
	}

	return sdk.ValidateStatus(resp.GetStatus(), callErr)
}

// Keys lists the keys currently stored by the host.
func (c *KVClient) Keys() ([]string, error) {
	req := &proto.KVStoreKeys{}
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := c.hostCall(c.runtime.Namespace, capabilityName, fnKeys, b)
	if callErr != nil && len(respBytes) == 0 {
		return nil, errors.Join(sdk.ErrHostCall, callErr)
	}

	var resp proto.KVStoreKeysResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		return nil, joinUnmarshalErr(callErr, unmarshalErr)
	}

	if statusErr := sdk.ValidateStatus(resp.GetStatus(), callErr); statusErr != nil {
		return nil, statusErr
	}

	return resp.GetKeys(), nil
}

// KeysInRange lists the stored keys between from and to inclusive, in
// lexical order. The host does not guarantee any ordering for Keys, so the
// listing is sorted locally before the boundary search.
func (c *KVClient) KeysInRange(from, to string) ([]string, error) {
	keys, err := c.Keys()
	if err != nil {
		return nil, err
	}

	slices.Sort(keys)
	return sorted.Range(keys, from, to, strings.Compare), nil
}

// Close releases resources held by the client.
func (c *KVClient) Close() error {
	_ = c
	return nil
}

// joinUnmarshalErr combines a response decode failure with any host call error.
func joinUnmarshalErr(callErr, unmarshalErr error) error {
	if callErr != nil {
		return errors.Join(
			sdk.ErrHostCall,
			callErr,
			sdk.ErrHostResponseInvalid,
			ErrUnmarshalResponse,
			unmarshalErr,
		)
	}
	return errors.Join(sdk.ErrHostResponseInvalid, ErrUnmarshalResponse, unmarshalErr)
}
