// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tl

import (
	"encoding/json"
)

// KeyStoreType - where the tonlib key store lives
type KeyStoreType interface {
	isKeyStoreType()
}

// KeyStoreTypeDirectory - keys stored under a directory
type KeyStoreTypeDirectory struct {
	Directory string `json:"directory"`
}

// KeyStoreTypeInMemory - keys held in memory only
type KeyStoreTypeInMemory struct {
}

func (*KeyStoreTypeDirectory) isKeyStoreType() {}
func (*KeyStoreTypeInMemory) isKeyStoreType()  {}

func (k KeyStoreTypeDirectory) MarshalJSON() ([]byte, error) {
	type keyStoreTypeDirectory KeyStoreTypeDirectory
	return json.Marshal(struct {
		Type string `json:"@type"`
		keyStoreTypeDirectory
	}{
		Type:                  "keyStoreTypeDirectory",
		keyStoreTypeDirectory: keyStoreTypeDirectory(k),
	})
}

func (k KeyStoreTypeInMemory) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"@type"`
	}{
		Type: "keyStoreTypeInMemory",
	})
}

// UnmarshalKeyStoreType - select and decode a key store type variant
func UnmarshalKeyStoreType(data []byte) (KeyStoreType, error) {
	record, err := parseRecord(data)
	if nil != err {
		return nil, err
	}
	switch recordType := record.recordType(); recordType {

	case "keyStoreTypeDirectory":
		if err := record.require(recordType, "directory"); nil != err {
			return nil, err
		}
		v := &KeyStoreTypeDirectory{}
		if err := json.Unmarshal(data, v); nil != err {
			return nil, err
		}
		return v, nil

	case "keyStoreTypeInMemory":
		return &KeyStoreTypeInMemory{}, nil

	default:
		return nil, unknownRecordType("KeyStoreType", recordType)
	}
}

// Config - the lite server configuration blob handed to tonlib
type Config struct {
	Config                 string  `json:"config"`
	BlockchainName         *string `json:"blockchain_name"`
	UseCallbacksForNetwork bool    `json:"use_callbacks_for_network"`
	IgnoreCache            bool    `json:"ignore_cache"`
}

// Options - tonlib initialisation options
type Options struct {
	Config       Config       `json:"config"`
	KeystoreType KeyStoreType `json:"keystore_type"`
}

func (o *Options) UnmarshalJSON(data []byte) error {
	type options Options
	aux := struct {
		*options
		KeystoreType json.RawMessage `json:"keystore_type"`
	}{
		options: (*options)(o),
	}
	if err := json.Unmarshal(data, &aux); nil != err {
		return err
	}
	if nil == aux.KeystoreType {
		return missingField("options", "keystore_type")
	}
	keystoreType, err := UnmarshalKeyStoreType(aux.KeystoreType)
	if nil != err {
		return err
	}
	o.KeystoreType = keystoreType
	return nil
}

// OptionsConfigInfo - wallet defaults reported after initialisation
//
// carries its own "@type" tag on the wire
type OptionsConfigInfo struct {
	DefaultWalletId             string `json:"default_wallet_id"`
	DefaultRwalletInitPublicKey string `json:"default_rwallet_init_public_key"`
}

func (c OptionsConfigInfo) MarshalJSON() ([]byte, error) {
	type optionsConfigInfo OptionsConfigInfo
	return json.Marshal(struct {
		Type string `json:"@type"`
		optionsConfigInfo
	}{
		Type:              "options.configInfo",
		optionsConfigInfo: optionsConfigInfo(c),
	})
}

func (c *OptionsConfigInfo) UnmarshalJSON(data []byte) error {
	record, err := parseRecord(data)
	if nil != err {
		return err
	}
	if recordType := record.recordType(); "options.configInfo" != recordType {
		return unknownRecordType("OptionsConfigInfo", recordType)
	}
	type optionsConfigInfo OptionsConfigInfo
	return json.Unmarshal(data, (*optionsConfigInfo)(c))
}

// OptionsInfo - result of setting tonlib options
type OptionsInfo struct {
	ConfigInfo OptionsConfigInfo `json:"config_info"`
}

// LogVerbosityLevel - tonlib log verbosity
type LogVerbosityLevel struct {
	VerbosityLevel uint32 `json:"verbosity_level"`
}
