package sqlinline

const QListTeamMembers = `--sql f9398877-cf4a-4315-b1ef-8c2e92abe125
select id, name, position, year, display_order, coalesce(image_url, ''), created_at
from team_members
where ($1::text = '' or year = $1::text)
order by year desc, display_order asc, created_at asc;
`

const QSelectTeamMember = `--sql ae0df53b-32f5-4b8f-962e-dc27ed4d58bf
select id, name, position, year, display_order, coalesce(image_url, ''), created_at
from team_members
where id = $1::uuid
limit 1;
`

const QInsertTeamMember = `--sql 909b087e-0ab8-48f3-9b91-f7c53d777c63
insert into team_members(name, position, year, display_order, image_url, created_at)
values ($1::text, $2::text, $3::text, $4::int, nullif($5::text, ''), now())
returning id, created_at;
`

const QUpdateTeamMember = `--sql 9a012122-b9cb-4f7a-a1b8-c7a62fd5adeb
update team_members
set name = $2::text,
    position = $3::text,
    year = $4::text,
    display_order = $5::int,
    image_url = nullif($6::text, '')
where id = $1::uuid
returning created_at;
`

const QDeleteTeamMember = `--sql 7259e754-174b-4828-9214-5d3ff44f2052
delete from team_members
where id = $1::uuid;
`
