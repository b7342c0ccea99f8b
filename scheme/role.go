// Copyright (c) 2026, The Monet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scheme

import (
	"fmt"

	"github.com/monetgo/monet/argb"
)

// Role names a slot in a [Scheme].
type Role int

const (
	Primary Role = iota
	OnPrimary
	PrimaryContainer
	OnPrimaryContainer
	Secondary
	OnSecondary
	SecondaryContainer
	OnSecondaryContainer
	Tertiary
	OnTertiary
	TertiaryContainer
	OnTertiaryContainer
	Error
	OnError
	ErrorContainer
	OnErrorContainer
	Background
	OnBackground
	Surface
	OnSurface
	SurfaceVariant
	OnSurfaceVariant
	Outline
	OutlineVariant
	Shadow
	Scrim
	InverseSurface
	InverseOnSurface
	InversePrimary

	RolesN
)

var roleNames = [RolesN]string{
	"primary", "onPrimary", "primaryContainer", "onPrimaryContainer",
	"secondary", "onSecondary", "secondaryContainer", "onSecondaryContainer",
	"tertiary", "onTertiary", "tertiaryContainer", "onTertiaryContainer",
	"error", "onError", "errorContainer", "onErrorContainer",
	"background", "onBackground", "surface", "onSurface",
	"surfaceVariant", "onSurfaceVariant", "outline", "outlineVariant",
	"shadow", "scrim", "inverseSurface", "inverseOnSurface", "inversePrimary",
}

func (r Role) String() string {
	if r < 0 || r >= RolesN {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Color returns the scheme's color for the given role. Unknown roles
// return 0.
func (s *Scheme) Color(r Role) argb.Color {
	switch r {
	case Primary:
		return s.Primary
	case OnPrimary:
		return s.OnPrimary
	case PrimaryContainer:
		return s.PrimaryContainer
	case OnPrimaryContainer:
		return s.OnPrimaryContainer
	case Secondary:
		return s.Secondary
	case OnSecondary:
		return s.OnSecondary
	case SecondaryContainer:
		return s.SecondaryContainer
	case OnSecondaryContainer:
		return s.OnSecondaryContainer
	case Tertiary:
		return s.Tertiary
	case OnTertiary:
		return s.OnTertiary
	case TertiaryContainer:
		return s.TertiaryContainer
	case OnTertiaryContainer:
		return s.OnTertiaryContainer
	case Error:
		return s.Error
	case OnError:
		return s.OnError
	case ErrorContainer:
		return s.ErrorContainer
	case OnErrorContainer:
		return s.OnErrorContainer
	case Background:
		return s.Background
	case OnBackground:
		return s.OnBackground
	case Surface:
		return s.Surface
	case OnSurface:
		return s.OnSurface
	case SurfaceVariant:
		return s.SurfaceVariant
	case OnSurfaceVariant:
		return s.OnSurfaceVariant
	case Outline:
		return s.Outline
	case OutlineVariant:
		return s.OutlineVariant
	case Shadow:
		return s.Shadow
	case Scrim:
		return s.Scrim
	case InverseSurface:
		return s.InverseSurface
	case InverseOnSurface:
		return s.InverseOnSurface
	case InversePrimary:
		return s.InversePrimary
	}
	return 0
}
