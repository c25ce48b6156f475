// Copyright (c) 2026 Movira. All rights reserved.
// Author: anh.trandinh.vn@gmail.com

package comment

// BuildTree assembles a flat, created-at-ascending list of comments into an
// ordered forest of threads.
//
// # Algorithm
//
// Two passes over the input. The first pass indexes every comment by ID and
// clears any stale Replies slice. The second pass attaches each comment to
// its parent's Replies when the parent is present in the same result set;
// otherwise the comment is surfaced as a root.
//
// # Ordering
//
// Both passes preserve the relative order of the input, so roots appear in
// creation order and replies within each parent appear in creation order.
//
// # Dangling parents
//
// A comment whose parent is missing from the input (parent deleted, or a
// stray cross-subject reference) becomes a visible root rather than being
// silently dropped, so no comment is ever lost from view.
//
// BuildTree is a pure function over in-memory data and never fails.
func BuildTree(comments []*Comment) []*Comment {
	if len(comments) == 0 {
		return []*Comment{}
	}

	index := make(map[string]*Comment, len(comments))
	for _, c := range comments {
		c.Replies = []*Comment{}
		index[c.ID] = c
	}

	roots := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		if c.ParentID != nil {
			if parent, ok := index[*c.ParentID]; ok {
				parent.Replies = append(parent.Replies, c)
				continue
			}
		}
		roots = append(roots, c)
	}

	return roots
}
