package reconcile

import "github.com/twinops/twinctl/pkg/twin"

// Copy-on-write helpers over decoded learning collections. The raw
// document rewrite is what actually persists; these build the decoded
// view the reconciler hands back to callers, without ever mutating the
// slice decoded from the fetch.

// appendLearning returns a new collection with item appended.
func appendLearning(list []twin.Learning, item twin.Learning) (updated []twin.Learning) {
	updated = make([]twin.Learning, 0, len(list)+1)
	updated = append(updated, list...)
	updated = append(updated, item)
	return updated
}

// removeLearning returns a new collection without the learning carrying
// id. Removing an unknown id returns a copy equal to the input.
func removeLearning(list []twin.Learning, id string) (updated []twin.Learning) {
	updated = make([]twin.Learning, 0, len(list))
	for _, item := range list {
		if item.ID == id {
			continue
		}
		updated = append(updated, item)
	}
	return updated
}

// replaceLearning returns a new collection with the element matching
// item.ID replaced. When no element matches, the copy is unchanged.
func replaceLearning(list []twin.Learning, item twin.Learning) (updated []twin.Learning) {
	updated = make([]twin.Learning, 0, len(list))
	for _, existing := range list {
		if existing.ID == item.ID {
			updated = append(updated, item)
			continue
		}
		updated = append(updated, existing)
	}
	return updated
}
