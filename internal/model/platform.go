package model

// Platform represents a bookable railway platform.  Each platform
// offers a fixed number of capacity units; one active ticket
// occupies exactly one unit.  Platforms are created by admin
// seeding or admin action and are never deleted in normal
// operation, though their capacity may be adjusted.
//
// Fields:
//  PlatformNumber – unique platform identifier chosen by the admin.
//  Capacity       – number of simultaneously active tickets allowed.
type Platform struct {
    PlatformNumber uint64 `json:"platformNumber"` // platforms.platform_number
    Capacity       uint32 `json:"capacity"`       // platforms.capacity
}
