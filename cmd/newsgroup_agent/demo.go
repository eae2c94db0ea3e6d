package main

// SampleDiscussion is the built-in three-speaker climate policy discussion
// used by --demo and whenever no input is given. It comfortably clears the
// structural validation thresholds.
const SampleDiscussion = `John: I've been thinking about the new climate policy proposals. They seem pretty comprehensive.

Sarah: Really? I read through them yesterday and I'm not convinced they go far enough. The carbon tax rates are still too low compared to what scientists recommend.

Mike: But Sarah, you have to consider the economic impact. If we raise taxes too high too fast, we could hurt small businesses and working families.

Sarah: Mike, that's exactly the kind of short-term thinking that got us into this mess. We need bold action now, not incremental changes.

John: I see both sides here. Maybe there's a middle ground? What if we implemented the tax gradually over 5 years?

Mike: That's more reasonable, John. I could support something like that. Sarah, what do you think?

Sarah: I suppose it's better than nothing, but I still think we're not moving fast enough.

John: Fair point, Sarah. But political reality matters too.

Mike: Exactly. Sometimes incremental progress is better than no progress.

Sarah: I understand that, but I worry we're compromising away our children's future.

John: Then let's make the gradual plan as ambitious as we can defend.`
