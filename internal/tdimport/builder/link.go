/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package builder

import (
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/common/model"
	"github.com/eclipse-basyx/basyx-go-tdimporter/internal/tdimport/tdjson"
)

var linkRules = qualifierRules("href", "type", "rel", "anchor", "sizes", "hreflang")

// BuildLink converts one WoT link.
func (b *Builder) BuildLink(obj *tdjson.Object, name string) (*model.SubmodelElementCollection, error) {
	smc := b.NewCollection(name, "link")
	if err := b.applyRules(linkRules, &node{path: name, obj: obj, smc: smc}); err != nil {
		return nil, err
	}
	return smc, nil
}

// BuildLinks converts the Thing-level links array into "links" with children link1..linkN.
func (b *Builder) BuildLinks(v tdjson.Value, path string) (*model.SubmodelElementCollection, error) {
	items, err := asArray(v, path)
	if err != nil {
		return nil, err
	}
	wrapper := b.NewCollection("links", "links")
	for i, item := range items {
		obj, err := asObject(item, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		link, err := b.BuildLink(obj, ordinal("link", i+1))
		if err != nil {
			return nil, err
		}
		wrapper.AddElement(link)
	}
	return wrapper, nil
}
