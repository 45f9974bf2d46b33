// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/resqnet/protosearch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalAgency serializes an Agency to bytes.
func MarshalAgency(agency *core.Agency) []byte {
	buf := make([]byte, core.AgencyMUS.Size(*agency))
	core.AgencyMUS.Marshal(*agency, buf)
	return buf
}

// UnmarshalAgency deserializes an Agency from bytes.
func UnmarshalAgency(data []byte) (*core.Agency, error) {
	agency, _, err := core.AgencyMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

// MarshalOrgDescriptor serializes an OrgDescriptor to bytes.
func MarshalOrgDescriptor(org *core.OrgDescriptor) []byte {
	buf := make([]byte, core.OrgDescriptorMUS.Size(*org))
	core.OrgDescriptorMUS.Marshal(*org, buf)
	return buf
}

// UnmarshalOrgDescriptor deserializes an OrgDescriptor from bytes.
func UnmarshalOrgDescriptor(data []byte) (*core.OrgDescriptor, error) {
	org, _, err := core.OrgDescriptorMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// MarshalProtocolChunk serializes a ProtocolChunk to bytes.
func MarshalProtocolChunk(chunk *core.ProtocolChunk) []byte {
	buf := make([]byte, core.ProtocolChunkMUS.Size(*chunk))
	core.ProtocolChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalProtocolChunk deserializes a ProtocolChunk from bytes.
func UnmarshalProtocolChunk(data []byte) (*core.ProtocolChunk, error) {
	chunk, _, err := core.ProtocolChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalUser serializes a User to bytes.
func MarshalUser(user *core.User) []byte {
	buf := make([]byte, core.UserMUS.Size(*user))
	core.UserMUS.Marshal(*user, buf)
	return buf
}

// UnmarshalUser deserializes a User from bytes.
func UnmarshalUser(data []byte) (*core.User, error) {
	user, _, err := core.UserMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarshalResultSet serializes a ResultSet to bytes.
func MarshalResultSet(rs *core.ResultSet) []byte {
	buf := make([]byte, core.ResultSetMUS.Size(*rs))
	core.ResultSetMUS.Marshal(*rs, buf)
	return buf
}

// UnmarshalResultSet deserializes a ResultSet from bytes.
func UnmarshalResultSet(data []byte) (*core.ResultSet, error) {
	rs, _, err := core.ResultSetMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

// MarshalImportCheckpoint serializes an ImportCheckpoint to bytes.
func MarshalImportCheckpoint(checkpoint *core.ImportCheckpoint) []byte {
	buf := make([]byte, core.ImportCheckpointMUS.Size(*checkpoint))
	core.ImportCheckpointMUS.Marshal(*checkpoint, buf)
	return buf
}

// UnmarshalImportCheckpoint deserializes an ImportCheckpoint from bytes.
func UnmarshalImportCheckpoint(data []byte) (*core.ImportCheckpoint, error) {
	checkpoint, _, err := core.ImportCheckpointMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
