// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: printshelf/v1/printshelf.proto

package printshelfv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ExtractRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	SourcePath    string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Archive       bool                   `protobuf:"varint,3,opt,name=archive,proto3" json:"archive,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractRequest) Reset() {
	*x = ExtractRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractRequest) ProtoMessage() {}

func (x *ExtractRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractRequest.ProtoReflect.Descriptor instead.
func (*ExtractRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExtractRequest) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *ExtractRequest) GetArchive() bool {
	if x != nil {
		return x.Archive
	}
	return false
}

type ExtractResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Metadata      *PrintMetadata         `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractResponse) Reset() {
	*x = ExtractResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractResponse) ProtoMessage() {}

func (x *ExtractResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractResponse.ProtoReflect.Descriptor instead.
func (*ExtractResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractResponse) GetMetadata() *PrintMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

type FilamentRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MaterialType  string                 `protobuf:"bytes,1,opt,name=material_type,json=materialType,proto3" json:"material_type,omitempty"`
	Color         string                 `protobuf:"bytes,2,opt,name=color,proto3" json:"color,omitempty"`
	Length        string                 `protobuf:"bytes,3,opt,name=length,proto3" json:"length,omitempty"`
	Weight        string                 `protobuf:"bytes,4,opt,name=weight,proto3" json:"weight,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FilamentRecord) Reset() {
	*x = FilamentRecord{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilamentRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilamentRecord) ProtoMessage() {}

func (x *FilamentRecord) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilamentRecord.ProtoReflect.Descriptor instead.
func (*FilamentRecord) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{2}
}

func (x *FilamentRecord) GetMaterialType() string {
	if x != nil {
		return x.MaterialType
	}
	return ""
}

func (x *FilamentRecord) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *FilamentRecord) GetLength() string {
	if x != nil {
		return x.Length
	}
	return ""
}

func (x *FilamentRecord) GetWeight() string {
	if x != nil {
		return x.Weight
	}
	return ""
}

type PrintSettings struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	LayerHeight     string                 `protobuf:"bytes,1,opt,name=layer_height,json=layerHeight,proto3" json:"layer_height,omitempty"`
	Infill          string                 `protobuf:"bytes,2,opt,name=infill,proto3" json:"infill,omitempty"`
	NozzleDiameter  string                 `protobuf:"bytes,3,opt,name=nozzle_diameter,json=nozzleDiameter,proto3" json:"nozzle_diameter,omitempty"`
	PrinterModel    string                 `protobuf:"bytes,4,opt,name=printer_model,json=printerModel,proto3" json:"printer_model,omitempty"`
	PrimaryMaterial string                 `protobuf:"bytes,5,opt,name=primary_material,json=primaryMaterial,proto3" json:"primary_material,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PrintSettings) Reset() {
	*x = PrintSettings{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrintSettings) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrintSettings) ProtoMessage() {}

func (x *PrintSettings) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrintSettings.ProtoReflect.Descriptor instead.
func (*PrintSettings) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{3}
}

func (x *PrintSettings) GetLayerHeight() string {
	if x != nil {
		return x.LayerHeight
	}
	return ""
}

func (x *PrintSettings) GetInfill() string {
	if x != nil {
		return x.Infill
	}
	return ""
}

func (x *PrintSettings) GetNozzleDiameter() string {
	if x != nil {
		return x.NozzleDiameter
	}
	return ""
}

func (x *PrintSettings) GetPrinterModel() string {
	if x != nil {
		return x.PrinterModel
	}
	return ""
}

func (x *PrintSettings) GetPrimaryMaterial() string {
	if x != nil {
		return x.PrimaryMaterial
	}
	return ""
}

type PrintMetadata struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	PrintDuration       string                 `protobuf:"bytes,1,opt,name=print_duration,json=printDuration,proto3" json:"print_duration,omitempty"`
	Filaments           []*FilamentRecord      `protobuf:"bytes,2,rep,name=filaments,proto3" json:"filaments,omitempty"`
	TotalFilamentWeight string                 `protobuf:"bytes,3,opt,name=total_filament_weight,json=totalFilamentWeight,proto3" json:"total_filament_weight,omitempty"`
	SourceFilePath      string                 `protobuf:"bytes,4,opt,name=source_file_path,json=sourceFilePath,proto3" json:"source_file_path,omitempty"`
	Settings            *PrintSettings         `protobuf:"bytes,5,opt,name=settings,proto3" json:"settings,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *PrintMetadata) Reset() {
	*x = PrintMetadata{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrintMetadata) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrintMetadata) ProtoMessage() {}

func (x *PrintMetadata) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrintMetadata.ProtoReflect.Descriptor instead.
func (*PrintMetadata) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{4}
}

func (x *PrintMetadata) GetPrintDuration() string {
	if x != nil {
		return x.PrintDuration
	}
	return ""
}

func (x *PrintMetadata) GetFilaments() []*FilamentRecord {
	if x != nil {
		return x.Filaments
	}
	return nil
}

func (x *PrintMetadata) GetTotalFilamentWeight() string {
	if x != nil {
		return x.TotalFilamentWeight
	}
	return ""
}

func (x *PrintMetadata) GetSourceFilePath() string {
	if x != nil {
		return x.SourceFilePath
	}
	return ""
}

func (x *PrintMetadata) GetSettings() *PrintSettings {
	if x != nil {
		return x.Settings
	}
	return nil
}

type IngestFileRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Path           string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	SkipDuplicates bool                   `protobuf:"varint,2,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{5}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{6}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryStats) Reset() {
	*x = IngestDirectoryStats{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryStats) ProtoMessage() {}

func (x *IngestDirectoryStats) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryStats.ProtoReflect.Descriptor instead.
func (*IngestDirectoryStats) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryStats) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryStats) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryStats) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryStats) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryStats) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Statistics    *IngestDirectoryStats  `protobuf:"bytes,1,opt,name=statistics,proto3" json:"statistics,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,2,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{9}
}

func (x *IngestDirectoryResponse) GetStatistics() *IngestDirectoryStats {
	if x != nil {
		return x.Statistics
	}
	return nil
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListModelsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListModelsRequest) Reset() {
	*x = ListModelsRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListModelsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListModelsRequest) ProtoMessage() {}

func (x *ListModelsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListModelsRequest.ProtoReflect.Descriptor instead.
func (*ListModelsRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{10}
}

type ModelSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	PrintDuration string                 `protobuf:"bytes,4,opt,name=print_duration,json=printDuration,proto3" json:"print_duration,omitempty"`
	TotalWeight   string                 `protobuf:"bytes,5,opt,name=total_weight,json=totalWeight,proto3" json:"total_weight,omitempty"`
	PrinterModel  string                 `protobuf:"bytes,6,opt,name=printer_model,json=printerModel,proto3" json:"printer_model,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ModelSummary) Reset() {
	*x = ModelSummary{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModelSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModelSummary) ProtoMessage() {}

func (x *ModelSummary) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModelSummary.ProtoReflect.Descriptor instead.
func (*ModelSummary) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{11}
}

func (x *ModelSummary) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ModelSummary) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ModelSummary) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ModelSummary) GetPrintDuration() string {
	if x != nil {
		return x.PrintDuration
	}
	return ""
}

func (x *ModelSummary) GetTotalWeight() string {
	if x != nil {
		return x.TotalWeight
	}
	return ""
}

func (x *ModelSummary) GetPrinterModel() string {
	if x != nil {
		return x.PrinterModel
	}
	return ""
}

func (x *ModelSummary) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type ListModelsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Models        []*ModelSummary        `protobuf:"bytes,1,rep,name=models,proto3" json:"models,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListModelsResponse) Reset() {
	*x = ListModelsResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListModelsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListModelsResponse) ProtoMessage() {}

func (x *ListModelsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListModelsResponse.ProtoReflect.Descriptor instead.
func (*ListModelsResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{12}
}

func (x *ListModelsResponse) GetModels() []*ModelSummary {
	if x != nil {
		return x.Models
	}
	return nil
}

type GetModelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileId        string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetModelRequest) Reset() {
	*x = GetModelRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetModelRequest) ProtoMessage() {}

func (x *GetModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetModelRequest.ProtoReflect.Descriptor instead.
func (*GetModelRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{13}
}

func (x *GetModelRequest) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

type GetModelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Model         *ModelSummary          `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	Metadata      *PrintMetadata         `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
	MetadataJson  string                 `protobuf:"bytes,3,opt,name=metadata_json,json=metadataJson,proto3" json:"metadata_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetModelResponse) Reset() {
	*x = GetModelResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetModelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetModelResponse) ProtoMessage() {}

func (x *GetModelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetModelResponse.ProtoReflect.Descriptor instead.
func (*GetModelResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{14}
}

func (x *GetModelResponse) GetModel() *ModelSummary {
	if x != nil {
		return x.Model
	}
	return nil
}

func (x *GetModelResponse) GetMetadata() *PrintMetadata {
	if x != nil {
		return x.Metadata
	}
	return nil
}

func (x *GetModelResponse) GetMetadataJson() string {
	if x != nil {
		return x.MetadataJson
	}
	return ""
}

type ExportCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogRequest) Reset() {
	*x = ExportCatalogRequest{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogRequest) ProtoMessage() {}

func (x *ExportCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogRequest.ProtoReflect.Descriptor instead.
func (*ExportCatalogRequest) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{15}
}

type ExportCatalogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogResponse) Reset() {
	*x = ExportCatalogResponse{}
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogResponse) ProtoMessage() {}

func (x *ExportCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_printshelf_v1_printshelf_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogResponse.ProtoReflect.Descriptor instead.
func (*ExportCatalogResponse) Descriptor() ([]byte, []int) {
	return file_printshelf_v1_printshelf_proto_rawDescGZIP(), []int{16}
}

func (x *ExportCatalogResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_printshelf_v1_printshelf_proto protoreflect.FileDescriptor

const file_printshelf_v1_printshelf_proto_rawDesc = "" +
	"\n" +
	"\x1eprintshelf/v1/printshelf.proto\x12\rprintshelf.v1\"e\n" +
	"\x0eExtractRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x18\n" +
	"\aarchive\x18\x03 \x01(\bR\aarchive\"K\n" +
	"\x0fExtractResponse\x128\n" +
	"\bmetadata\x18\x01 \x01(\v2\x1c.printshelf.v1.PrintMetadataR\bmetadata\"{\n" +
	"\x0eFilamentRecord\x12#\n" +
	"\rmaterial_type\x18\x01 \x01(\tR\fmaterialType\x12\x14\n" +
	"\x05color\x18\x02 \x01(\tR\x05color\x12\x16\n" +
	"\x06length\x18\x03 \x01(\tR\x06length\x12\x16\n" +
	"\x06weight\x18\x04 \x01(\tR\x06weight\"\xc3\x01\n" +
	"\rPrintSettings\x12!\n" +
	"\flayer_height\x18\x01 \x01(\tR\vlayerHeight\x12\x16\n" +
	"\x06infill\x18\x02 \x01(\tR\x06infill\x12'\n" +
	"\x0fnozzle_diameter\x18\x03 \x01(\tR\x0enozzleDiameter\x12#\n" +
	"\rprinter_model\x18\x04 \x01(\tR\fprinterModel\x12)\n" +
	"\x10primary_material\x18\x05 \x01(\tR\x0fprimaryMaterial\"\x8b\x02\n" +
	"\rPrintMetadata\x12%\n" +
	"\x0eprint_duration\x18\x01 \x01(\tR\rprintDuration\x12;\n" +
	"\tfilaments\x18\x02 \x03(\v2\x1d.printshelf.v1.FilamentRecordR\tfilaments\x122\n" +
	"\x15total_filament_weight\x18\x03 \x01(\tR\x13totalFilamentWeight\x12(\n" +
	"\x10source_file_path\x18\x04 \x01(\tR\x0esourceFilePath\x128\n" +
	"\bsettings\x18\x05 \x01(\v2\x1c.printshelf.v1.PrintSettingsR\bsettings\"P\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12'\n" +
	"\x0fskip_duplicates\x18\x02 \x01(\bR\x0eskipDuplicates\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xa4\x01\n" +
	"\x14IngestDirectoryStats\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\"\x97\x01\n" +
	"\x17IngestDirectoryResponse\x12C\n" +
	"\n" +
	"statistics\x18\x01 \x01(\v2#.printshelf.v1.IngestDirectoryStatsR\n" +
	"statistics\x127\n" +
	"\aresults\x18\x02 \x03(\v2\x1d.printshelf.v1.IngestResponseR\aresults\"\x13\n" +
	"\x11ListModelsRequest\"\xeb\x01\n" +
	"\fModelSummary\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12%\n" +
	"\x0eprint_duration\x18\x04 \x01(\tR\rprintDuration\x12!\n" +
	"\ftotal_weight\x18\x05 \x01(\tR\vtotalWeight\x12#\n" +
	"\rprinter_model\x18\x06 \x01(\tR\fprinterModel\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\"I\n" +
	"\x12ListModelsResponse\x123\n" +
	"\x06models\x18\x01 \x03(\v2\x1b.printshelf.v1.ModelSummaryR\x06models\"*\n" +
	"\x0fGetModelRequest\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\"\xa4\x01\n" +
	"\x10GetModelResponse\x121\n" +
	"\x05model\x18\x01 \x01(\v2\x1b.printshelf.v1.ModelSummaryR\x05model\x128\n" +
	"\bmetadata\x18\x02 \x01(\v2\x1c.printshelf.v1.PrintMetadataR\bmetadata\x12#\n" +
	"\rmetadata_json\x18\x03 \x01(\tR\fmetadataJson\"\x16\n" +
	"\x14ExportCatalogRequest\"+\n" +
	"\x15ExportCatalogResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2]\n" +
	"\x11ExtractionService\x12H\n" +
	"\aExtract\x12\x1d.printshelf.v1.ExtractRequest\x1a\x1e.printshelf.v1.ExtractResponse2\xc3\x01\n" +
	"\x10IngestionService\x12M\n" +
	"\n" +
	"IngestFile\x12 .printshelf.v1.IngestFileRequest\x1a\x1d.printshelf.v1.IngestResponse\x12`\n" +
	"\x0fIngestDirectory\x12%.printshelf.v1.IngestDirectoryRequest\x1a&.printshelf.v1.IngestDirectoryResponse2\xb0\x01\n" +
	"\x0eCatalogService\x12Q\n" +
	"\n" +
	"ListModels\x12 .printshelf.v1.ListModelsRequest\x1a!.printshelf.v1.ListModelsResponse\x12K\n" +
	"\bGetModel\x12\x1e.printshelf.v1.GetModelRequest\x1a\x1f.printshelf.v1.GetModelResponse2k\n" +
	"\rExportService\x12Z\n" +
	"\rExportCatalog\x12#.printshelf.v1.ExportCatalogRequest\x1a$.printshelf.v1.ExportCatalogResponseBGZEgithub.com/printshelf/printshelf/gen/proto/printshelf/v1;printshelfv1b\x06proto3"

var (
	file_printshelf_v1_printshelf_proto_rawDescOnce sync.Once
	file_printshelf_v1_printshelf_proto_rawDescData []byte
)

func file_printshelf_v1_printshelf_proto_rawDescGZIP() []byte {
	file_printshelf_v1_printshelf_proto_rawDescOnce.Do(func() {
		file_printshelf_v1_printshelf_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_printshelf_v1_printshelf_proto_rawDesc), len(file_printshelf_v1_printshelf_proto_rawDesc)))
	})
	return file_printshelf_v1_printshelf_proto_rawDescData
}

var file_printshelf_v1_printshelf_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_printshelf_v1_printshelf_proto_goTypes = []any{
	(*ExtractRequest)(nil),          // 0: printshelf.v1.ExtractRequest
	(*ExtractResponse)(nil),         // 1: printshelf.v1.ExtractResponse
	(*FilamentRecord)(nil),          // 2: printshelf.v1.FilamentRecord
	(*PrintSettings)(nil),           // 3: printshelf.v1.PrintSettings
	(*PrintMetadata)(nil),           // 4: printshelf.v1.PrintMetadata
	(*IngestFileRequest)(nil),       // 5: printshelf.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 6: printshelf.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 7: printshelf.v1.IngestDirectoryRequest
	(*IngestDirectoryStats)(nil),    // 8: printshelf.v1.IngestDirectoryStats
	(*IngestDirectoryResponse)(nil), // 9: printshelf.v1.IngestDirectoryResponse
	(*ListModelsRequest)(nil),       // 10: printshelf.v1.ListModelsRequest
	(*ModelSummary)(nil),            // 11: printshelf.v1.ModelSummary
	(*ListModelsResponse)(nil),      // 12: printshelf.v1.ListModelsResponse
	(*GetModelRequest)(nil),         // 13: printshelf.v1.GetModelRequest
	(*GetModelResponse)(nil),        // 14: printshelf.v1.GetModelResponse
	(*ExportCatalogRequest)(nil),    // 15: printshelf.v1.ExportCatalogRequest
	(*ExportCatalogResponse)(nil),   // 16: printshelf.v1.ExportCatalogResponse
}
var file_printshelf_v1_printshelf_proto_depIdxs = []int32{
	4,  // 0: printshelf.v1.ExtractResponse.metadata:type_name -> printshelf.v1.PrintMetadata
	2,  // 1: printshelf.v1.PrintMetadata.filaments:type_name -> printshelf.v1.FilamentRecord
	3,  // 2: printshelf.v1.PrintMetadata.settings:type_name -> printshelf.v1.PrintSettings
	8,  // 3: printshelf.v1.IngestDirectoryResponse.statistics:type_name -> printshelf.v1.IngestDirectoryStats
	6,  // 4: printshelf.v1.IngestDirectoryResponse.results:type_name -> printshelf.v1.IngestResponse
	11, // 5: printshelf.v1.ListModelsResponse.models:type_name -> printshelf.v1.ModelSummary
	11, // 6: printshelf.v1.GetModelResponse.model:type_name -> printshelf.v1.ModelSummary
	4,  // 7: printshelf.v1.GetModelResponse.metadata:type_name -> printshelf.v1.PrintMetadata
	0,  // 8: printshelf.v1.ExtractionService.Extract:input_type -> printshelf.v1.ExtractRequest
	5,  // 9: printshelf.v1.IngestionService.IngestFile:input_type -> printshelf.v1.IngestFileRequest
	7,  // 10: printshelf.v1.IngestionService.IngestDirectory:input_type -> printshelf.v1.IngestDirectoryRequest
	10, // 11: printshelf.v1.CatalogService.ListModels:input_type -> printshelf.v1.ListModelsRequest
	13, // 12: printshelf.v1.CatalogService.GetModel:input_type -> printshelf.v1.GetModelRequest
	15, // 13: printshelf.v1.ExportService.ExportCatalog:input_type -> printshelf.v1.ExportCatalogRequest
	1,  // 14: printshelf.v1.ExtractionService.Extract:output_type -> printshelf.v1.ExtractResponse
	6,  // 15: printshelf.v1.IngestionService.IngestFile:output_type -> printshelf.v1.IngestResponse
	9,  // 16: printshelf.v1.IngestionService.IngestDirectory:output_type -> printshelf.v1.IngestDirectoryResponse
	12, // 17: printshelf.v1.CatalogService.ListModels:output_type -> printshelf.v1.ListModelsResponse
	14, // 18: printshelf.v1.CatalogService.GetModel:output_type -> printshelf.v1.GetModelResponse
	16, // 19: printshelf.v1.ExportService.ExportCatalog:output_type -> printshelf.v1.ExportCatalogResponse
	14, // [14:20] is the sub-list for method output_type
	8,  // [8:14] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_printshelf_v1_printshelf_proto_init() }
func file_printshelf_v1_printshelf_proto_init() {
	if File_printshelf_v1_printshelf_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_printshelf_v1_printshelf_proto_rawDesc), len(file_printshelf_v1_printshelf_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_printshelf_v1_printshelf_proto_goTypes,
		DependencyIndexes: file_printshelf_v1_printshelf_proto_depIdxs,
		MessageInfos:      file_printshelf_v1_printshelf_proto_msgTypes,
	}.Build()
	File_printshelf_v1_printshelf_proto = out.File
	file_printshelf_v1_printshelf_proto_goTypes = nil
	file_printshelf_v1_printshelf_proto_depIdxs = nil
}
