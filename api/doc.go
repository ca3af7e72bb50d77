// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for fixring. Concrete implementations live in the
// ring package; test doubles in fake. Packages depend on these
// interfaces, not on each other.
package api
