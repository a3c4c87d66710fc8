package ridf

// SegmentID is the packed 32-bit identifier carried by every segment
// record: device (bits 20..25) | focal-plane (bits 14..19) | detector
// (bits 8..13) | module (bits 0..7). Only the low 8 bits (Module) select
// the decoder family; the rest identify where the data came from.
type SegmentID uint32

// Device returns the 6-bit device subfield.
func (s SegmentID) Device() int { return int((uint32(s) >> 20) & 0x3f) }

// FocalPlane returns the 6-bit focal-plane subfield.
func (s SegmentID) FocalPlane() int { return int((uint32(s) >> 14) & 0x3f) }

// Detector returns the 6-bit detector subfield.
func (s SegmentID) Detector() int { return int((uint32(s) >> 8) & 0x3f) }

// Module returns the 8-bit module subfield that selects the decoder
// family.
func (s SegmentID) Module() int { return int(uint32(s) & 0xff) }

// Known module ids, per the dispatch table in the component design.
const (
	ModuleC16   = 0
	ModuleV7XX  = 21
	ModuleV1290 = 25
	ModuleMADC  = 32
	ModuleFIT   = 47
)
