// Zaparoo SimLaunch
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo SimLaunch.
//
// Zaparoo SimLaunch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo SimLaunch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo SimLaunch.  If not, see <http://www.gnu.org/licenses/>.

package shortcuts

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// the thread; it still has to be balanced by CoUninitialize.
const sFalse = 1

// readLink asks the Windows shell for a .lnk file's target path.
func readLink(path string) (string, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return "", fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return "", fmt.Errorf("failed to create shell object: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", fmt.Errorf("failed to query shell interface: %w", err)
	}
	defer shell.Release()

	scRaw, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return "", fmt.Errorf("failed to open shortcut %s: %w", path, err)
	}
	sc := scRaw.ToIDispatch()
	defer sc.Release()

	targetRaw, err := oleutil.GetProperty(sc, "TargetPath")
	if err != nil {
		return "", fmt.Errorf("failed to read shortcut target: %w", err)
	}
	target := targetRaw.ToString()
	if err := targetRaw.Clear(); err != nil {
		return "", fmt.Errorf("failed to release shortcut target: %w", err)
	}
	if target == "" {
		return "", fmt.Errorf("%w: %s", ErrNoTarget, path)
	}
	return target, nil
}
