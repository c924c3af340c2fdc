package magic

import "errors"

// ErrGroupCountMismatch is returned by ExtrapolateDensity (BUDE) when it
// is given meshes of incompatible shape. MeshToWWAdvanced does not return
// it: powers/errors lists whose length doesn't match the available
// energy/time groups are logged and replaced by the defaults.
var ErrGroupCountMismatch = errors.New("magic: group count mismatch")
